package http

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// DefaultClientLimiterSize is the number of clients tracked by default.
const DefaultClientLimiterSize = 10000

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client address gets its own limiter, so one noisy client cannot
// starve the others. At most size clients are tracked; the least recently
// seen client is forgotten first and starts over with a full bucket.
type ClientLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	rps      float64
	burst    int
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with the given burst, tracking up to size clients. A size of
// zero or less means DefaultClientLimiterSize.
func NewClientLimiter(rps float64, burst, size int) (*ClientLimiter, error) {
	if size <= 0 {
		size = DefaultClientLimiterSize
	}
	limiters, err := lru.New[string, *rate.Limiter](size)
	if err != nil {
		return nil, fmt.Errorf("create client limiter: %w", err)
	}
	return &ClientLimiter{
		limiters: limiters,
		rps:      rps,
		burst:    max(1, burst),
	}, nil
}

// Allow reports whether a request from client may proceed now.
func (l *ClientLimiter) Allow(client string) bool {
	l.mu.Lock()
	limiter, ok := l.limiters.Get(client)
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters.Add(client, limiter)
	}
	l.mu.Unlock()

	return limiter.Allow()
}

// Len returns the number of clients currently tracked.
func (l *ClientLimiter) Len() int {
	return l.limiters.Len()
}

// Middleware rejects requests over the limit with 429 Too Many Requests.
func (l *ClientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientAddr(r)) {
			w.Header().Set("Retry-After", "1")
			writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "Too many requests."})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientAddr returns the host part of the request's remote address.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
