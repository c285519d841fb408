//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"dealdesk/internal/domain/user"
	"dealdesk/internal/handler/dto/request"
	"dealdesk/internal/handler/dto/response"
	"dealdesk/internal/usecase/queries"
	"dealdesk/tests/common/dbtest"
	"dealdesk/tests/common/httptest"
	"dealdesk/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "merchant@example.com", string(user.RoleMerchant))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleMerchant))

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "Valid credentials",
			email:          "merchant@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown user",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong password",
			email:          "merchant@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty password",
			email:          "merchant@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotNil(t, res.User)
				require.Equal(t, tt.email, res.User.Email)

				access := httptest.ExtractCookie(w, "access_token")
				refresh := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(t, access)
				require.NotEmpty(t, access.Value)
				require.NotNil(t, refresh)
				require.NotEmpty(t, refresh.Value)
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("Normal case: Refresh rotates the token pair", func() {
		t := s.T()

		loginResp := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "merchant@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginResp.Code)

		refresh := httptest.ExtractCookie(loginResp, "refresh_token")
		require.NotNil(t, refresh)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil,
			[]*http.Cookie{refresh})
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		newAccess := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, newAccess)
		require.NotEmpty(t, newAccess.Value)
	})

	s.Run("Error case: Refresh without cookie is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("Normal case: Current user profile is returned", func() {
		t := s.T()

		loginResp := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "merchant@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginResp.Code)

		access := httptest.ExtractCookie(loginResp, "access_token")
		require.NotNil(t, access)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, access.Value)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "merchant@example.com", me.Email)
		require.Equal(t, string(user.RoleMerchant), me.Role)
		require.True(t, me.IsActive)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("Normal case: Logout clears the token cookies", func() {
		t := s.T()

		loginResp := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "merchant@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginResp.Code)

		access := httptest.ExtractCookie(loginResp, "access_token")
		refresh := httptest.ExtractCookie(loginResp, "refresh_token")
		require.NotNil(t, access)
		require.NotNil(t, refresh)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil,
			[]*http.Cookie{access, refresh})
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		clearedAccess := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, clearedAccess)
		require.Empty(t, clearedAccess.Value)
	})
}
