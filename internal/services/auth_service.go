package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

const (
	avatarFolder = "avatar"
	avatarWidth  = 150
	defaultRole  = "user"
)

// AuthServiceImpl implements domain.AuthService. Every collaborator is an
// injected interface; there is no package-level state.
type AuthServiceImpl struct {
	userRepo        domain.UserRepository
	sessionCache    domain.SessionCache
	passwordSvc     domain.PasswordService
	tokenSvc        domain.TokenService
	notificationSvc domain.NotificationService
	assetStore      domain.AssetStore
	guard           domain.ActivationGuard
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionCache domain.SessionCache,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	notificationSvc domain.NotificationService,
	assetStore domain.AssetStore,
	guard domain.ActivationGuard,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:        userRepo,
		sessionCache:    sessionCache,
		passwordSvc:     passwordSvc,
		tokenSvc:        tokenSvc,
		notificationSvc: notificationSvc,
		assetStore:      assetStore,
		guard:           guard,
	}
}

// Register implements domain.AuthService. No user record is created here;
// the candidate lives entirely inside the activation token until the code
// is verified. A mail failure discards the token so registration can never
// succeed without the user being able to learn the code.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.ActivationToken, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	if err := s.guard.AllowSend(ctx, email); err != nil {
		return nil, err
	}

	hashed, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	candidate := &domain.PendingRegistration{
		Name:     name,
		Email:    email,
		Password: hashed,
	}

	activation, err := s.tokenSvc.IssueActivationToken(candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to issue activation token: %w", err)
	}

	data := map[string]any{
		"Name":           name,
		"ActivationCode": activation.Code,
	}
	if err := s.notificationSvc.Send(email, "Activate your account", "activation-mail.html", data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotificationFailure, err)
	}

	log.Printf("ACTIVATION_MAIL_SENT: email=%s", email)
	return activation, nil
}

// Activate implements domain.AuthService. Signature and expiry are checked
// before the code; the duplicate-email check is repeated after verification
// because the email may have been claimed during the token's validity
// window.
func (s *AuthServiceImpl) Activate(ctx context.Context, token, code string) (*domain.User, error) {
	key := tokenDigest(token)
	if err := s.guard.AllowAttempt(ctx, key); err != nil {
		return nil, err
	}

	candidate, err := s.tokenSvc.VerifyActivationToken(token, code)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, candidate.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	user := &domain.User{
		Name:         candidate.Name,
		Email:        candidate.Email,
		PasswordHash: candidate.Password,
		Role:         defaultRole,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.guard.ClearAttempts(ctx, key); err != nil {
		log.Printf("ACTIVATION_GUARD_CLEAR_FAILED: email=%s error=%v", user.Email, err)
	}

	log.Printf("USER_ACTIVATED: user_id=%s email=%s", user.ID, user.Email)
	return user, nil
}

// Login implements domain.AuthService. Unknown email and wrong password
// both report ErrInvalidCredentials so the API does not allow account
// enumeration.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Printf("USER_LOGIN: user_id=%s email=%s", user.ID, user.Email)
	return result, nil
}

// Refresh implements domain.AuthService. A cryptographically valid refresh
// token is only honored while a session snapshot exists, which is what lets
// Logout revoke tokens before their natural expiry. Both tokens rotate.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	userID, err := s.tokenSvc.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, domain.ErrRefreshInvalid
	}

	user, err := s.sessionCache.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	return s.openSession(ctx, user)
}

// Logout implements domain.AuthService. Deleting the snapshot is the sole
// invalidation mechanism for outstanding refresh tokens.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID string) error {
	if err := s.sessionCache.Del(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	log.Printf("USER_LOGOUT: user_id=%s", userID)
	return nil
}

// CurrentUser implements domain.AuthService. The snapshot is authoritative
// for reads; no store round-trip happens here.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.sessionCache.Get(ctx, userID)
}

// SocialLogin implements domain.AuthService. Social providers are treated
// as pre-verified, so an unknown email gets a record immediately with no
// activation step and no password.
func (s *AuthServiceImpl) SocialLogin(ctx context.Context, email, name, avatarURL string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up email: %w", err)
		}

		user = &domain.User{
			Name:  name,
			Email: email,
			Role:  defaultRole,
		}
		if avatarURL != "" {
			user.Avatar = &domain.Avatar{URL: avatarURL}
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		log.Printf("USER_CREATED_SOCIAL: user_id=%s email=%s", user.ID, user.Email)
	}

	return s.openSession(ctx, user)
}

// UpdateProfile implements domain.AuthService
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID, newName, newEmail string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if newEmail != "" && newEmail != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, newEmail)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to look up email: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrDuplicateEmail
		}
		user.Email = newEmail
	}

	if newName != "" {
		user.Name = newName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := s.sessionCache.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return user, nil
}

// ChangePassword implements domain.AuthService. Social accounts have no
// password hash and cannot change one.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (*domain.User, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || user.PasswordHash == "" {
		return nil, domain.ErrInvalidUser
	}

	if !s.passwordSvc.Verify(user.PasswordHash, oldPassword) {
		return nil, domain.ErrInvalidOldPassword
	}

	hashed, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hashed

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := s.sessionCache.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	log.Printf("PASSWORD_CHANGED: user_id=%s", user.ID)
	return user, nil
}

// UpdateAvatar implements domain.AuthService. The new asset is uploaded and
// the record persisted before the old asset is destroyed, so the record
// never points at a deleted asset. A failed destroy only orphans storage
// and is logged, not surfaced.
func (s *AuthServiceImpl) UpdateAvatar(ctx context.Context, userID, payload string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ref, err := s.assetStore.Upload(ctx, payload, avatarFolder, avatarWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to upload avatar: %w", err)
	}

	old := user.Avatar
	user.Avatar = &domain.Avatar{AssetID: ref.AssetID, URL: ref.URL}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if derr := s.assetStore.Destroy(ctx, ref.AssetID); derr != nil {
			log.Printf("AVATAR_ORPHANED: asset_id=%s error=%v", ref.AssetID, derr)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if old != nil && old.AssetID != "" {
		if err := s.assetStore.Destroy(ctx, old.AssetID); err != nil {
			log.Printf("AVATAR_ORPHANED: asset_id=%s error=%v", old.AssetID, err)
		}
	}

	if err := s.sessionCache.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return user, nil
}

// openSession issues a fresh token pair and snapshots the user into the
// session cache. Shared by login, social login and refresh; concurrent
// calls for the same user race last-writer-wins on the snapshot, which is
// acceptable because the credential store stays the source of truth.
func (s *AuthServiceImpl) openSession(ctx context.Context, user *domain.User) (*domain.AuthResult, error) {
	tokens, err := s.tokenSvc.IssueSessionTokens(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session tokens: %w", err)
	}

	if err := s.sessionCache.Set(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to write session: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Tokens:    *tokens,
		ExpiresIn: int64(s.tokenSvc.AccessTTL().Seconds()),
	}, nil
}

// tokenDigest keys attempt counters without storing the raw token.
func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
