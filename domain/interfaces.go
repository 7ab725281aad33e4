package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// SessionCache holds serialized user snapshots keyed by user id. Entries
// have no implicit expiry; Logout is the only invalidation path.
type SessionCache interface {
	Get(ctx context.Context, userID string) (*User, error)
	Set(ctx context.Context, user *User) error
	Del(ctx context.Context, userID string) error
}

// TokenService issues and verifies the three token classes. Each class is
// signed with its own secret so none verifies against another's path.
type TokenService interface {
	IssueActivationToken(candidate *PendingRegistration) (*ActivationToken, error)
	VerifyActivationToken(token, suppliedCode string) (*PendingRegistration, error)
	IssueSessionTokens(userID string) (*SessionTokens, error)
	VerifyAccessToken(token string) (string, error)
	VerifyRefreshToken(token string) (string, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// NotificationService delivers templated mail to a user.
type NotificationService interface {
	Send(to, subject, template string, data map[string]any) error
}

// AssetStore stores uploaded binary assets (avatars).
type AssetStore interface {
	Upload(ctx context.Context, payload, folder string, width int) (*AssetRef, error)
	Destroy(ctx context.Context, assetID string) error
}

// ActivationGuard rate-limits activation mail per email and code attempts
// per token.
type ActivationGuard interface {
	AllowSend(ctx context.Context, email string) error
	AllowAttempt(ctx context.Context, key string) error
	ClearAttempts(ctx context.Context, key string) error
}

// AuthService defines the account and session lifecycle flows.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*ActivationToken, error)
	Activate(ctx context.Context, token, code string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context, userID string) (*User, error)
	SocialLogin(ctx context.Context, email, name, avatarURL string) (*AuthResult, error)
	UpdateProfile(ctx context.Context, userID, newName, newEmail string) (*User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (*User, error)
	UpdateAvatar(ctx context.Context, userID, payload string) (*User, error)
}
