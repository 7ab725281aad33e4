package domain

import "errors"

// Registration and activation errors
var (
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrTokenInvalid         = errors.New("invalid activation token")
	ErrTokenExpired         = errors.New("activation token has expired")
	ErrCodeMismatch         = errors.New("invalid activation code")
	ErrActivationThrottled  = errors.New("activation mail recently sent")
	ErrTooManyAttempts      = errors.New("maximum activation attempts exceeded")
	ErrNotificationFailure  = errors.New("failed to send activation mail")
)

// Credential errors
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOldPassword = errors.New("invalid old password")
	ErrInvalidUser        = errors.New("invalid user")
	ErrUserNotFound       = errors.New("user not found")
)

// Session errors
var (
	ErrRefreshInvalid  = errors.New("could not refresh token")
	ErrSessionNotFound = errors.New("session not found")
)
