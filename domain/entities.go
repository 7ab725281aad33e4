package domain

import "time"

// Avatar is a stored profile picture reference.
type Avatar struct {
	AssetID string `json:"public_id"`
	URL     string `json:"url"`
}

// User represents an account in the system. PasswordHash is excluded from
// JSON so session snapshots and API responses never carry it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Avatar       *Avatar   `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PendingRegistration is a not-yet-created account. It exists only inside
// the activation token claims; no user record exists until activation
// succeeds. Password carries the bcrypt hash, never the plaintext.
type PendingRegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionTokens is a signed access/refresh pair. The access validity window
// is always contained in the refresh window.
type SessionTokens struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult represents a successful login, social login or refresh.
type AuthResult struct {
	User      *User
	Tokens    SessionTokens
	ExpiresIn int64
}

// ActivationToken pairs the signed registration token with the plaintext
// code that is delivered by mail. Only the token is returned to the caller.
type ActivationToken struct {
	Token string
	Code  string
}

// AssetRef identifies an uploaded asset in the asset store.
type AssetRef struct {
	AssetID string
	URL     string
}
