package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

func setupGuard(t *testing.T, cfg ActivationGuardConfig) (*miniredis.Miniredis, domain.ActivationGuard) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewActivationGuard(client, cfg)
}

func TestActivationGuard_ResendThrottle(t *testing.T) {
	mr, guard := setupGuard(t, ActivationGuardConfig{
		ResendWindow: time.Minute,
		MaxAttempts:  5,
		AttemptTTL:   5 * time.Minute,
	})
	ctx := context.Background()

	if err := guard.AllowSend(ctx, "alice@example.com"); err != nil {
		t.Fatalf("first send should be allowed: %v", err)
	}
	if err := guard.AllowSend(ctx, "alice@example.com"); !errors.Is(err, domain.ErrActivationThrottled) {
		t.Errorf("expected ErrActivationThrottled, got %v", err)
	}

	// a different email is unaffected
	if err := guard.AllowSend(ctx, "bob@example.com"); err != nil {
		t.Errorf("unrelated email throttled: %v", err)
	}

	mr.FastForward(time.Minute + time.Second)

	if err := guard.AllowSend(ctx, "alice@example.com"); err != nil {
		t.Errorf("send after window should be allowed: %v", err)
	}
}

func TestActivationGuard_AttemptLimit(t *testing.T) {
	_, guard := setupGuard(t, ActivationGuardConfig{
		ResendWindow: time.Minute,
		MaxAttempts:  3,
		AttemptTTL:   5 * time.Minute,
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := guard.AllowAttempt(ctx, "tok1"); err != nil {
			t.Fatalf("attempt %d should be allowed: %v", i+1, err)
		}
	}
	if err := guard.AllowAttempt(ctx, "tok1"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Errorf("expected ErrTooManyAttempts, got %v", err)
	}

	if err := guard.ClearAttempts(ctx, "tok1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := guard.AllowAttempt(ctx, "tok1"); err != nil {
		t.Errorf("attempt after clear should be allowed: %v", err)
	}
}

func TestActivationGuard_AttemptCounterExpires(t *testing.T) {
	mr, guard := setupGuard(t, ActivationGuardConfig{
		ResendWindow: time.Minute,
		MaxAttempts:  1,
		AttemptTTL:   5 * time.Minute,
	})
	ctx := context.Background()

	if err := guard.AllowAttempt(ctx, "tok2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := guard.AllowAttempt(ctx, "tok2"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}

	// the counter dies with the token's validity window
	mr.FastForward(5*time.Minute + time.Second)

	if err := guard.AllowAttempt(ctx, "tok2"); err != nil {
		t.Errorf("attempt after expiry should be allowed: %v", err)
	}
}
