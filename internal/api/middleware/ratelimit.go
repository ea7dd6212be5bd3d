package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter implements a fixed-window in-memory rate limiter keyed by
// client IP. Good enough for a single-process deployment; a distributed
// deployment would move this to a shared store.
type RateLimiter struct {
	clients  map[string]*clientLimit
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientLimit struct {
	resetTime time.Time
	count     int
}

// NewRateLimiter creates a new rate limiter allowing requests per window
// for each client
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients:  make(map[string]*clientLimit),
		requests: requests,
		window:   window,
	}

	// Evict idle clients once per window
	go rl.cleanup()

	return rl
}

// Middleware returns the rate limiting http middleware
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(getClientIP(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow checks if a client may make another request in the current window
func (rl *RateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()

	client, exists := rl.clients[clientID]
	if !exists || now.After(client.resetTime) {
		rl.clients[clientID] = &clientLimit{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return true
	}

	if client.count < rl.requests {
		client.count++
		return true
	}

	return false
}

// cleanup removes expired client entries periodically
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now().UTC()
		for clientID, client := range rl.clients {
			if now.After(client.resetTime) {
				delete(rl.clients, clientID)
			}
		}
		rl.mu.Unlock()
	}
}

// getClientIP extracts the client IP from the request, preferring proxy
// headers over the socket address
func getClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
