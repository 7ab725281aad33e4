package mocks

import (
	"fmt"
	"strings"
	"time"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueActivationTokenFunc  func(candidate *domain.PendingRegistration) (*domain.ActivationToken, error)
	VerifyActivationTokenFunc func(token, suppliedCode string) (*domain.PendingRegistration, error)
	IssueSessionTokensFunc    func(userID string) (*domain.SessionTokens, error)
	VerifyAccessTokenFunc     func(token string) (string, error)
	VerifyRefreshTokenFunc    func(token string) (string, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// IssueActivationToken issues an activation token
func (m *MockTokenService) IssueActivationToken(candidate *domain.PendingRegistration) (*domain.ActivationToken, error) {
	if m.IssueActivationTokenFunc != nil {
		return m.IssueActivationTokenFunc(candidate)
	}
	// Default behavior: deterministic token and code
	return &domain.ActivationToken{
		Token: "activation_token_" + candidate.Email,
		Code:  "4821",
	}, nil
}

// VerifyActivationToken verifies an activation token
func (m *MockTokenService) VerifyActivationToken(token, suppliedCode string) (*domain.PendingRegistration, error) {
	if m.VerifyActivationTokenFunc != nil {
		return m.VerifyActivationTokenFunc(token, suppliedCode)
	}
	if !strings.HasPrefix(token, "activation_token_") {
		return nil, domain.ErrTokenInvalid
	}
	if suppliedCode != "4821" {
		return nil, domain.ErrCodeMismatch
	}
	email := strings.TrimPrefix(token, "activation_token_")
	return &domain.PendingRegistration{
		Name:     "Test User",
		Email:    email,
		Password: "hashed_password",
	}, nil
}

// IssueSessionTokens issues a session token pair
func (m *MockTokenService) IssueSessionTokens(userID string) (*domain.SessionTokens, error) {
	if m.IssueSessionTokensFunc != nil {
		return m.IssueSessionTokensFunc(userID)
	}
	return &domain.SessionTokens{
		AccessToken:  fmt.Sprintf("access_token_%s", userID),
		RefreshToken: fmt.Sprintf("refresh_token_%s", userID),
	}, nil
}

// VerifyAccessToken verifies an access token
func (m *MockTokenService) VerifyAccessToken(token string) (string, error) {
	if m.VerifyAccessTokenFunc != nil {
		return m.VerifyAccessTokenFunc(token)
	}
	if id, ok := strings.CutPrefix(token, "access_token_"); ok {
		return id, nil
	}
	return "", domain.ErrTokenInvalid
}

// VerifyRefreshToken verifies a refresh token
func (m *MockTokenService) VerifyRefreshToken(token string) (string, error) {
	if m.VerifyRefreshTokenFunc != nil {
		return m.VerifyRefreshTokenFunc(token)
	}
	if id, ok := strings.CutPrefix(token, "refresh_token_"); ok {
		return id, nil
	}
	return "", domain.ErrTokenInvalid
}

// AccessTTL returns the mock access token lifetime
func (m *MockTokenService) AccessTTL() time.Duration { return 5 * time.Minute }

// RefreshTTL returns the mock refresh token lifetime
func (m *MockTokenService) RefreshTTL() time.Duration { return 72 * time.Hour }

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
