package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

// ActivationGuardConfig bounds activation mail resends and code attempts.
type ActivationGuardConfig struct {
	ResendWindow time.Duration
	MaxAttempts  int
	AttemptTTL   time.Duration
}

// RedisActivationGuard implements domain.ActivationGuard. The activation
// token itself is stateless, so the brute-force guard for its 4-digit code
// has to live somewhere with state; the attempt counter expires with the
// token.
type RedisActivationGuard struct {
	client *redis.Client
	config ActivationGuardConfig
}

// NewActivationGuard creates a new Redis-backed activation guard
func NewActivationGuard(client *redis.Client, config ActivationGuardConfig) domain.ActivationGuard {
	return &RedisActivationGuard{client: client, config: config}
}

// AllowSend implements domain.ActivationGuard. One activation mail per
// email per resend window.
func (g *RedisActivationGuard) AllowSend(ctx context.Context, email string) error {
	resendKey := fmt.Sprintf("activation:res:%s", email)

	ok, err := g.client.SetNX(ctx, resendKey, 1, g.config.ResendWindow).Result()
	if err != nil {
		return fmt.Errorf("failed to set resend throttle: %w", err)
	}
	if !ok {
		return domain.ErrActivationThrottled
	}
	return nil
}

// AllowAttempt implements domain.ActivationGuard. Counts code attempts per
// token and rejects past the limit. The counter expires with the token.
func (g *RedisActivationGuard) AllowAttempt(ctx context.Context, key string) error {
	attemptsKey := fmt.Sprintf("activation:att:%s", key)

	attempts, err := g.client.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to increment attempts: %w", err)
	}
	if attempts == 1 {
		g.client.Expire(ctx, attemptsKey, g.config.AttemptTTL)
	}
	if attempts > int64(g.config.MaxAttempts) {
		return domain.ErrTooManyAttempts
	}
	return nil
}

// ClearAttempts implements domain.ActivationGuard. Called after a
// successful activation; the resend throttle is left to expire on its own.
func (g *RedisActivationGuard) ClearAttempts(ctx context.Context, key string) error {
	attemptsKey := fmt.Sprintf("activation:att:%s", key)
	return g.client.Del(ctx, attemptsKey).Err()
}
