// Package rate implementa rate limiting por fixed window, con backend
// en memoria (single instance) o Redis (multi instance).
package rate

import (
	"context"
	"time"
)

// Result describe el resultado de una verificación de rate limit.
type Result struct {
	Allowed     bool
	Remaining   int64
	RetryAfter  time.Duration
	CurrentHits int64
}

// Limiter decide si una key (IP, cuenta, etc) puede hacer otra request.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Config parámetros del limiter.
type Config struct {
	Max    int64
	Window time.Duration
}
