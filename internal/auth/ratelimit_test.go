package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoginLimiterFailsOpenWithoutRedis(t *testing.T) {
	var limiter *LoginLimiter
	assert.True(t, limiter.Allow(context.Background(), "a@x.com|127.0.0.1"))

	limiter = NewLoginLimiter(nil, zap.NewNop(), 10, time.Minute)
	assert.True(t, limiter.Allow(context.Background(), "a@x.com|127.0.0.1"))
}

func TestLoginLimiterDisabled(t *testing.T) {
	limiter := NewLoginLimiter(nil, zap.NewNop(), 0, time.Minute)
	assert.True(t, limiter.Allow(context.Background(), "a@x.com|127.0.0.1"))
}
