package middleware

import (
	"notes-client/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the HTTP middlewares. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	m := Middleware{l: l}
	if requestsPerMin > 0 {
		m.limiter = newRateLimiter(requestsPerMin)
	}
	return m
}
