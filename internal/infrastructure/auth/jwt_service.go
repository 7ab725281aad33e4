package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// activationClaims is the wire shape of an activation token:
// {user: {name, email, password}, activationCode, exp}.
type activationClaims struct {
	User           domain.PendingRegistration `json:"user"`
	ActivationCode string                     `json:"activationCode"`
	jwt.RegisteredClaims
}

// sessionClaims is the wire shape of access and refresh tokens: {id, exp}.
type sessionClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTService implements domain.TokenService. Each token class is signed
// with its own secret so an activation token never verifies on the session
// paths and access/refresh tokens are not interchangeable.
type JWTService struct {
	activationSecret []byte
	accessSecret     []byte
	refreshSecret    []byte
	activationTTL    time.Duration
	accessTTL        time.Duration
	refreshTTL       time.Duration
}

// NewJWTService creates a new JWT token service.
func NewJWTService(activationSecret, accessSecret, refreshSecret string, activationTTL, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTService{
		activationSecret: []byte(activationSecret),
		accessSecret:     []byte(accessSecret),
		refreshSecret:    []byte(refreshSecret),
		activationTTL:    activationTTL,
		accessTTL:        accessTTL,
		refreshTTL:       refreshTTL,
	}
}

// generateActivationCode draws a uniform 4-digit decimal code from
// [1000, 9999].
func generateActivationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate activation code: %w", err)
	}
	return fmt.Sprintf("%d", 1000+n.Int64()), nil
}

// IssueActivationToken implements domain.TokenService. The returned code is
// delivered out-of-band; only the token goes back to the caller.
func (j *JWTService) IssueActivationToken(candidate *domain.PendingRegistration) (*domain.ActivationToken, error) {
	code, err := generateActivationCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	claims := activationClaims{
		User:           *candidate,
		ActivationCode: code,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.activationTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.activationSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign activation token: %w", err)
	}

	return &domain.ActivationToken{Token: token, Code: code}, nil
}

// VerifyActivationToken implements domain.TokenService. Signature and expiry
// are checked before the code is even looked at, so a forged token learns
// nothing about the embedded code.
func (j *JWTService) VerifyActivationToken(tokenString, suppliedCode string) (*domain.PendingRegistration, error) {
	var claims activationClaims
	if err := j.parse(tokenString, &claims, j.activationSecret); err != nil {
		return nil, err
	}

	if claims.ActivationCode != suppliedCode {
		return nil, domain.ErrCodeMismatch
	}

	candidate := claims.User
	return &candidate, nil
}

// IssueSessionTokens implements domain.TokenService.
func (j *JWTService) IssueSessionTokens(userID string) (*domain.SessionTokens, error) {
	access, err := j.signSession(userID, j.accessSecret, j.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := j.signSession(userID, j.refreshSecret, j.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &domain.SessionTokens{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccessToken implements domain.TokenService.
func (j *JWTService) VerifyAccessToken(tokenString string) (string, error) {
	return j.verifySession(tokenString, j.accessSecret)
}

// VerifyRefreshToken implements domain.TokenService.
func (j *JWTService) VerifyRefreshToken(tokenString string) (string, error) {
	return j.verifySession(tokenString, j.refreshSecret)
}

// AccessTTL implements domain.TokenService.
func (j *JWTService) AccessTTL() time.Duration { return j.accessTTL }

// RefreshTTL implements domain.TokenService.
func (j *JWTService) RefreshTTL() time.Duration { return j.refreshTTL }

func (j *JWTService) signSession(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (j *JWTService) verifySession(tokenString string, secret []byte) (string, error) {
	var claims sessionClaims
	if err := j.parse(tokenString, &claims, secret); err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.ID, nil
}

func (j *JWTService) parse(tokenString string, claims jwt.Claims, secret []byte) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrTokenInvalid
	}
	if !token.Valid {
		return domain.ErrTokenInvalid
	}
	return nil
}
