package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Deal errors
	ErrDealNotFound     = errors.New("deal not found")
	ErrWindowNotFound   = errors.New("time window not found")
	ErrScheduleNotReady = errors.New("schedule is not ready to publish")
	ErrAlreadyPublished = errors.New("deal is already published")

	// Menu errors
	ErrMenuItemNotFound = errors.New("menu item not found")

	// Auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user inactive")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
