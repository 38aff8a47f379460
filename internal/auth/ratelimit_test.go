package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testRateLimiter(maxAttempts int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		MaxAttempts:     maxAttempts,
		WindowDuration:  time.Minute,
		LockoutDuration: time.Minute,
		CleanupInterval: time.Minute,
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("fresh key is allowed", func(t *testing.T) {
		rl := testRateLimiter(3)
		defer rl.Stop()

		allowed, _ := rl.Allow("1.2.3.4", "alice")
		assert.True(t, allowed)
	})

	t.Run("locks out after max failures", func(t *testing.T) {
		rl := testRateLimiter(3)
		defer rl.Stop()

		rl.RecordFailure("1.2.3.4", "alice")
		rl.RecordFailure("1.2.3.4", "alice")
		locked, retryAfter := rl.RecordFailure("1.2.3.4", "alice")
		assert.True(t, locked)
		assert.Greater(t, retryAfter, time.Duration(0))

		allowed, retryAfter := rl.Allow("1.2.3.4", "alice")
		assert.False(t, allowed)
		assert.Greater(t, retryAfter, time.Duration(0))
	})

	t.Run("keys are scoped to ip and username", func(t *testing.T) {
		rl := testRateLimiter(1)
		defer rl.Stop()

		rl.RecordFailure("1.2.3.4", "alice")

		allowed, _ := rl.Allow("1.2.3.4", "bob")
		assert.True(t, allowed)

		allowed, _ = rl.Allow("5.6.7.8", "alice")
		assert.True(t, allowed)

		allowed, _ = rl.Allow("1.2.3.4", "alice")
		assert.False(t, allowed)
	})

	t.Run("success clears the record", func(t *testing.T) {
		rl := testRateLimiter(2)
		defer rl.Stop()

		rl.RecordFailure("1.2.3.4", "alice")
		rl.RecordSuccess("1.2.3.4", "alice")
		rl.RecordFailure("1.2.3.4", "alice")

		allowed, _ := rl.Allow("1.2.3.4", "alice")
		assert.True(t, allowed)
	})
}

func TestRateLimiter_DefaultsApplied(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{})
	defer rl.Stop()

	assert.Equal(t, 5, rl.maxAttempts)
	assert.Equal(t, 15*time.Minute, rl.windowDuration)
	assert.Equal(t, 30*time.Minute, rl.lockoutDuration)
}
