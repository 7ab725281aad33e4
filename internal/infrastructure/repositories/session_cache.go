package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// cachedUser is the stored snapshot shape. Unlike domain.User it keeps the
// password hash, so ChangePassword can verify against the snapshot without
// a store round-trip failing on social accounts.
type cachedUser struct {
	domain.User
	PasswordHash string `json:"password,omitempty"`
}

// SessionCache implements domain.SessionCache using Redis. Entries are
// written without a TTL: logout is the only invalidation path, which is what
// makes refresh tokens revocable before their natural expiry.
type SessionCache struct {
	client *redis.Client
	prefix string
}

// NewSessionCache creates a new redis-backed session cache
func NewSessionCache(client *redis.Client) domain.SessionCache {
	return &SessionCache{
		client: client,
		prefix: "session:",
	}
}

// Get implements domain.SessionCache
func (r *SessionCache) Get(ctx context.Context, userID string) (*domain.User, error) {
	data, err := r.client.Get(ctx, r.prefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var snapshot cachedUser
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	user := snapshot.User
	user.PasswordHash = snapshot.PasswordHash
	return &user, nil
}

// Set implements domain.SessionCache
func (r *SessionCache) Set(ctx context.Context, user *domain.User) error {
	snapshot := cachedUser{User: *user, PasswordHash: user.PasswordHash}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, r.prefix+user.ID, data, 0).Err()
}

// Del implements domain.SessionCache
func (r *SessionCache) Del(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.prefix+userID).Err()
}
