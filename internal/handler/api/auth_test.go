//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"dealdesk/internal/handler/api"
	reqdto "dealdesk/internal/handler/dto/request"
	resdto "dealdesk/internal/handler/dto/response"
	"dealdesk/internal/pkg/config"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/pkg/jwt"
	"dealdesk/internal/usecase/commands"
	"dealdesk/internal/usecase/queries"
	"dealdesk/tests/common/httptest"
	commandsmock "dealdesk/tests/mock/commands"
	queriesmock "dealdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	jwtService := jwt.NewService("test-secret", 15*time.Minute, 24*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.CookieConfig{SameSite: "Lax"})
	s.userID = uuid.New()

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) userView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          s.userID,
		Email:       "merchant@example.com",
		Role:        "merchant",
		DisplayName: "merchant",
		IsActive:    true,
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	loginReq := reqdto.LoginRequest{Email: "merchant@example.com", Password: "password123"}

	s.Run("successful login sets cookies and returns the user", func() {
		result := &commands.LoginResult{
			UserID:    s.userID,
			TokenPair: &commands.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		}
		s.mockCommands.EXPECT().Login(gomock.Any(), loginReq).Return(result, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(s.userView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", loginReq, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Require().NotNil(res.User)
		s.Equal("merchant@example.com", res.User.Email)

		access := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(access)
		s.Equal("access", access.Value)
		refresh := httptest.ExtractCookie(w, "refresh_token")
		s.Require().NotNil(refresh)
		s.Equal("refresh", refresh.Value)
	})

	s.Run("invalid credentials return 401", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), loginReq).Return(nil, errs.ErrInvalidCredentials)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", loginReq, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("inactive account returns 403", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), loginReq).Return(nil, errs.ErrUserInactive)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", loginReq, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Account is inactive")
	})

	s.Run("malformed body returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login",
			map[string]string{"email": "not-an-email"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("valid refresh cookie rotates the pair", func() {
		pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").Return(pair, nil)

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil,
			[]*http.Cookie{{Name: "refresh_token", Value: "old-refresh"}})

		s.Equal(http.StatusNoContent, w.Code)
		access := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(access)
		s.Equal("new-access", access.Value)
	})

	s.Run("missing cookie returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Refresh token not found")
	})

	s.Run("rejected token returns 401", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").Return(nil, errs.ErrTokenValidation)

		w := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil,
			[]*http.Cookie{{Name: "refresh_token", Value: "stale"}})
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid refresh token")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("logout clears cookies", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, w.Code)
		access := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(access)
		s.Empty(access.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns the current user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(s.userView(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var res queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(s.userID, res.ID)
		s.Equal("merchant", res.Role)
	})

	s.Run("unknown user returns 404", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, errs.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}
