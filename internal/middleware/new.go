package middleware

import (
	"task-hero/pkg/log"
)

// Middleware bundles the gin middlewares of the HTTP host.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middlewares. ratePerMin <= 0 disables rate limiting.
func New(l log.Logger, ratePerMin int) Middleware {
	var limiter *rateLimiter
	if ratePerMin > 0 {
		limiter = newRateLimiter(ratePerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
