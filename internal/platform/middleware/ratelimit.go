// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"math"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
	ttl     time.Duration
}

// NewRateLimiter allows rps requests per second per IP with the given burst.
// Clients idle for longer than ttl are forgotten by [RateLimiter.Run].
func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*rateLimitClient),
		limit:   rate.Limit(rps),
		burst:   burst,
		ttl:     ttl,
	}
}

// Allow consumes one token for ip and reports whether the request may proceed.
func (limiter *RateLimiter) Allow(ip string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	client, found := limiter.clients[ip]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(limiter.limit, limiter.burst)}
		limiter.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.AllowN(now, 1)
}

// Sweep forgets clients not seen since now - ttl and returns how many remain.
func (limiter *RateLimiter) Sweep(now time.Time) int {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	for ip, client := range limiter.clients {
		if now.Sub(client.lastSeen) > limiter.ttl {
			delete(limiter.clients, ip)
		}
	}
	return len(limiter.clients)
}

// Run sweeps idle clients every interval until ctx is cancelled.
func (limiter *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			limiter.Sweep(now)
		case <-ctx.Done():
			return
		}
	}
}

// Middleware rejects requests over the limit with RATE_LIMITED (429).
func (limiter *RateLimiter) Middleware(onError ErrorWriter) func(http.Handler) http.Handler {
	retryAfter := 1
	if limiter.limit > 0 && limiter.limit < 1 {
		retryAfter = int(math.Ceil(1 / float64(limiter.limit)))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !limiter.Allow(RealIP(request), time.Now()) {
				onError(writer, request, apperr.RateLimited(retryAfter))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
