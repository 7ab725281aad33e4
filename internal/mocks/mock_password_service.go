package mocks

import (
	"strings"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: reversible mock hash
	return "hashed_" + password, nil
}

// Verify verifies a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return strings.TrimPrefix(hashedPassword, "hashed_") == password && hashedPassword != ""
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*MockPasswordService)(nil)
