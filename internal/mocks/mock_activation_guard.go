package mocks

import (
	"context"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// MockActivationGuard implements domain.ActivationGuard for testing
type MockActivationGuard struct {
	AllowSendFunc     func(ctx context.Context, email string) error
	AllowAttemptFunc  func(ctx context.Context, key string) error
	ClearAttemptsFunc func(ctx context.Context, key string) error
}

// NewMockActivationGuard creates a new MockActivationGuard with default behaviors
func NewMockActivationGuard() *MockActivationGuard {
	return &MockActivationGuard{}
}

// AllowSend allows or throttles an activation mail; default allows
func (m *MockActivationGuard) AllowSend(ctx context.Context, email string) error {
	if m.AllowSendFunc != nil {
		return m.AllowSendFunc(ctx, email)
	}
	return nil
}

// AllowAttempt allows or rejects a code attempt; default allows
func (m *MockActivationGuard) AllowAttempt(ctx context.Context, key string) error {
	if m.AllowAttemptFunc != nil {
		return m.AllowAttemptFunc(ctx, key)
	}
	return nil
}

// ClearAttempts resets the attempt counter; default succeeds
func (m *MockActivationGuard) ClearAttempts(ctx context.Context, key string) error {
	if m.ClearAttemptsFunc != nil {
		return m.ClearAttemptsFunc(ctx, key)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.ActivationGuard = (*MockActivationGuard)(nil)
