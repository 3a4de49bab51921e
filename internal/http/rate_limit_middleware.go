package http

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/allisson/idgen/internal/httputil"
)

const (
	rateLimiterCleanupInterval = 5 * time.Minute
	rateLimiterMaxIdle         = time.Hour
)

// rateLimiterStore keys one token bucket per client IP.
type rateLimiterStore struct {
	limiters sync.Map // client IP -> *rateLimiterEntry
	rps      float64
	burst    int
}

type rateLimiterEntry struct {
	limiter *rate.Limiter
	// lastSeen is the UnixNano time of the latest request.
	lastSeen atomic.Int64
}

// RateLimitMiddleware throttles each client IP, as resolved by c.ClientIP, to rps requests
// per second with the given burst. Throttled requests get a 429 with a Retry-After header in
// whole seconds. Idle buckets are evicted until ctx is done.
func RateLimitMiddleware(ctx context.Context, rps float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	store := &rateLimiterStore{rps: rps, burst: burst}
	go store.cleanupStale(ctx, rateLimiterCleanupInterval, rateLimiterMaxIdle)

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limiter := store.getLimiter(clientIP)
		if limiter.Allow() {
			c.Next()
			return
		}

		retryAfter := retryAfterSeconds(limiter)
		logger.Debug("rate limit exceeded",
			slog.String("client_ip", clientIP),
			slog.String("path", c.FullPath()),
			slog.Int("retry_after", retryAfter))

		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.ErrorResponse{
			Error:   "rate_limit_exceeded",
			Message: "Too many requests, retry after the delay in the Retry-After header",
		})
	}
}

// retryAfterSeconds returns the wait for the next token rounded up, never below one second.
func retryAfterSeconds(limiter *rate.Limiter) int {
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()

	seconds := int(math.Ceil(delay.Seconds()))
	if seconds < 1 {
		return 1
	}
	return seconds
}

// getLimiter returns the bucket of clientIP, creating it on first use.
func (s *rateLimiterStore) getLimiter(clientIP string) *rate.Limiter {
	now := time.Now().UnixNano()

	val, ok := s.limiters.Load(clientIP)
	if !ok {
		entry := &rateLimiterEntry{limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		val, _ = s.limiters.LoadOrStore(clientIP, entry)
	}

	entry := val.(*rateLimiterEntry)
	entry.lastSeen.Store(now)
	return entry.limiter
}

func (s *rateLimiterStore) cleanupStale(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.removeIdle(now.Add(-maxIdle))
		}
	}
}

// removeIdle evicts buckets whose last request is older than threshold.
func (s *rateLimiterStore) removeIdle(threshold time.Time) {
	cutoff := threshold.UnixNano()
	s.limiters.Range(func(key, value any) bool {
		if value.(*rateLimiterEntry).lastSeen.Load() < cutoff {
			s.limiters.Delete(key)
		}
		return true
	})
}
