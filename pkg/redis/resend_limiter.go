package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultResendLimit is the maximum number of OTP resends per window
	DefaultResendLimit = 3
	// DefaultResendWindow is the counting window for OTP resends
	DefaultResendWindow = 10 * time.Minute

	resendKeyPrefix = "otp:resend:"
)

// ResendLimiter throttles OTP resend requests per email address using a
// fixed counting window in Redis.
type ResendLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewResendLimiter creates a resend limiter backed by the given client
func NewResendLimiter(client *redis.Client, limit int64, window time.Duration) *ResendLimiter {
	if limit <= 0 {
		limit = DefaultResendLimit
	}
	if window <= 0 {
		window = DefaultResendWindow
	}
	return &ResendLimiter{client: client, limit: limit, window: window}
}

// Allow reports whether another resend is permitted for the email. The
// counter expires with the window, so a denied caller can retry later.
func (l *ResendLimiter) Allow(ctx context.Context, email string) (bool, error) {
	key := resendKeyPrefix + email

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= l.limit, nil
}
