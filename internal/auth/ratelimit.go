package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginLimiter throttles login attempts per email/IP pair using a Redis
// counter with a rolling window. Redis being unavailable fails open: a
// broken cache must not lock everyone out.
type LoginLimiter struct {
	client   *redis.Client
	logger   *zap.Logger
	attempts int
	window   time.Duration
}

// NewLoginLimiter builds a limiter. attempts <= 0 disables limiting.
func NewLoginLimiter(client *redis.Client, logger *zap.Logger, attempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{client: client, logger: logger, attempts: attempts, window: window}
}

// Allow records one attempt for the key and reports whether it is still
// within the configured budget.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil || l.attempts <= 0 {
		return true
	}

	redisKey := "login_attempts:" + key
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	return count <= int64(l.attempts)
}
