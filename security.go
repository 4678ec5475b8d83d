package main

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/olgasafonova/gtin-mcp-server/metrics"
)

// RateLimiter is a fixed-window request limiter keyed by client IP.
// Counts reset every interval.
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]int
	rate     int
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter allowing rate requests per interval per IP.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]int),
		rate:     rate,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
	go rl.resetLoop()
	return rl
}

// resetLoop clears all buckets every interval until Close is called.
func (rl *RateLimiter) resetLoop() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			rl.buckets = make(map[string]int)
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

// Allow reports whether the given IP may make another request in the
// current window.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.buckets[ip] >= rl.rate {
		return false
	}
	rl.buckets[ip]++
	return true
}

// Close stops the reset loop. Safe to call multiple times.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

// SecurityConfig holds settings for the middleware guarding the HTTP
// metrics listener.
type SecurityConfig struct {
	RateLimit   int   // requests per minute per IP, 0 disables limiting
	MaxBodySize int64 // request body cap in bytes, 0 disables the cap
}

// SecurityMiddleware wraps an http.Handler with per-IP rate limiting and
// a request body size cap.
type SecurityMiddleware struct {
	handler http.Handler
	logger  *slog.Logger
	config  SecurityConfig
	limiter *RateLimiter
}

// NewSecurityMiddleware creates the middleware. A RateLimit of 0 leaves
// requests unthrottled.
func NewSecurityMiddleware(handler http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	sm := &SecurityMiddleware{
		handler: handler,
		logger:  logger,
		config:  config,
	}
	if config.RateLimit > 0 {
		sm.limiter = NewRateLimiter(config.RateLimit, time.Minute)
	}
	return sm
}

func (sm *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if sm.limiter != nil && !sm.limiter.Allow(ip) {
		metrics.RateLimitRejections.Inc()
		sm.logger.Warn("Rate limit exceeded", "ip", ip)
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		return
	}

	if sm.config.MaxBodySize > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, sm.config.MaxBodySize)
	}

	sm.handler.ServeHTTP(w, r)
}

// Close releases the limiter's resources.
func (sm *SecurityMiddleware) Close() {
	if sm.limiter != nil {
		sm.limiter.Close()
	}
}
