package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// BcryptService implements domain.PasswordService
type BcryptService struct {
	cost int
}

// NewPasswordService creates a new bcrypt password service
func NewPasswordService() domain.PasswordService {
	return &BcryptService{cost: bcrypt.DefaultCost}
}

// Hash implements domain.PasswordService
func (p *BcryptService) Hash(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Verify implements domain.PasswordService
func (p *BcryptService) Verify(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
