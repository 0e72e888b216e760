package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"movie-review/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = time.Minute
	limiterIdleTTL       = 3 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Idle buckets are
// swept in the background until Close is called.
type RateLimiter struct {
	config utils.RateLimitConfig
	logger *zap.Logger

	mu      sync.Mutex
	clients map[string]*client

	done      chan struct{}
	closeOnce sync.Once
}

func NewRateLimiter(config utils.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		config:  config,
		logger:  logger,
		clients: make(map[string]*client),
		done:    make(chan struct{}),
	}

	if config.Enabled {
		go rl.sweep()
	}

	return rl
}

func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, c := range rl.clients {
				if now.Sub(c.lastSeen) > limiterIdleTTL {
					delete(rl.clients, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Close stops the background sweep.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.done) })
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, found := rl.clients[ip]
	if !found {
		c = &client{limiter: rate.NewLimiter(rate.Limit(rl.config.RPS), rl.config.Burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = time.Now()

	return c.limiter.Allow()
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		ip := clientIP(r)
		if !rl.allow(ip) {
			rl.logger.Warn("Rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", "1")
			utils.ResponseTooManyRequests(w, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr. chi's RealIP middleware runs
// earlier in the chain and rewrites RemoteAddr from proxy headers.
func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
