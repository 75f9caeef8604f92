package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-WMS-ROI/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. Nil means Redis is not configured and callers fall back to
// dev-mode behavior.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// BlacklistToken adds an access token to the blacklist (used on logout).
// Returns nil if Redis is not available.
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	err := client.Set(Ctx, key, "1", expiresIn).Err()
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted checks whether a token was revoked.
// Returns false if Redis is not available (dev mode allows all tokens).
func IsTokenBlacklisted(token string) (bool, error) {
	client := ensureClient()
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}

// RecordLoginFailure bumps the failed-login counter for an email and
// returns the new count. The counter expires after the cooldown window.
func RecordLoginFailure(email string, window time.Duration) (int64, error) {
	client := ensureClient()
	if client == nil {
		return 0, nil
	}

	key := fmt.Sprintf("login_fail:%s", email)
	count, err := client.Incr(Ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to record login failure: %v", err)
	}
	if count == 1 {
		client.Expire(Ctx, key, window)
	}
	return count, nil
}

// LoginFailureCount returns the current failed-login count for an email.
func LoginFailureCount(email string) (int64, error) {
	client := ensureClient()
	if client == nil {
		return 0, nil
	}

	key := fmt.Sprintf("login_fail:%s", email)
	count, err := client.Get(Ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

// LoginCooldownRemaining returns how long until the failure counter expires.
func LoginCooldownRemaining(email string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}

	key := fmt.Sprintf("login_fail:%s", email)
	ttl, err := client.TTL(Ctx, key).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// ClearLoginFailures resets the counter after a successful login.
func ClearLoginFailures(email string) {
	client := ensureClient()
	if client == nil {
		return
	}
	client.Del(Ctx, fmt.Sprintf("login_fail:%s", email))
}
