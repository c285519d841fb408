package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"dealdesk/internal/domain/user"
	reqdto "dealdesk/internal/handler/dto/request"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/pkg/jwt"
	"dealdesk/internal/pkg/password"
	"dealdesk/internal/usecase/queries"
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	userView, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	tokenPair, err := a.issueTokens(userView.ID, role)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userView.ID); err != nil {
		// Not critical; the login itself succeeded.
		slog.Warn("failed to update last login", "user_id", userView.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    userView.ID,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, errs.ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenValidation)
	}

	// Validate user still exists and is active
	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userView == nil {
		return nil, errs.ErrUserNotFound
	}
	if !userView.IsActive {
		return nil, errs.ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same answer as a password mismatch to prevent user enumeration.
		return nil, errs.ErrInvalidCredentials
	}

	if userView == nil {
		return nil, errs.ErrUserNotFound
	}
	if !userView.IsActive {
		return nil, errs.ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return userView, nil
}
