//go:build unit

package middleware

import (
	"testing"
	"time"

	"calldesk-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	now := time.Date(2016, time.June, 20, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 2})
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))

	// buckets are per client
	assert.True(t, rl.allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	now := time.Date(2016, time.June, 20, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1})
	rl.now = func() time.Time { return now }

	rl.allow("10.0.0.1")
	now = now.Add(idleLimiterTTL / 2)
	rl.allow("10.0.0.2")
	assert.Len(t, rl.clients, 2)

	now = now.Add(idleLimiterTTL/2 + time.Second)
	rl.allow("10.0.0.2")
	assert.Len(t, rl.clients, 1)
	assert.Contains(t, rl.clients, "10.0.0.2")
}
