package api

import (
	"net/http"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/killallgit/gameshelf-api/api/types"
)

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

func newClientLimiter(limit rate.Limit, burst int) *clientLimiter {
	cl := &clientLimiter{limiter: rate.NewLimiter(limit, burst)}
	cl.touch()
	return cl
}

func (cl *clientLimiter) touch() {
	cl.lastSeen.Store(time.Now().UnixNano())
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, cl.lastSeen.Load()))
}

// CORSConfig lists what cross-origin callers may send
type CORSConfig struct {
	Origins []string
	Methods []string
	Headers []string
}

// CORS sets the allow headers on every response and answers preflight
// requests with an empty 200. An Origins entry of "*" allows any origin.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	if len(cfg.Origins) == 0 {
		cfg.Origins = []string{"*"}
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}
	methods := strings.Join(cfg.Methods, ", ")
	headers := strings.Join(cfg.Headers, ", ")
	wildcard := slices.Contains(cfg.Origins, "*")

	return func(c *gin.Context) {
		switch origin := c.GetHeader("Origin"); {
		case wildcard:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(cfg.Origins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", methods)
		if headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(1024 * 1024)
}

func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// PerClientRateLimit allows rps requests per second per client IP with the
// given burst. Limiters unused for ten minutes are dropped by a background
// sweep that stops when cleanupStop closes.
func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = rps
	}

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiterInterface, _ := rateLimiters.LoadOrStore(clientIP, newClientLimiter(rate.Limit(rps), burst))

		cl := limiterInterface.(*clientLimiter)
		cl.touch()

		if !cl.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Success: false,
				Error:   types.MsgTooManyRequests,
			})
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sweepRateLimiters(rateLimiters, time.Now(), 10*time.Minute)
		case <-cleanupStop:
			return
		}
	}
}

// sweepRateLimiters drops limiters idle for longer than maxIdle
func sweepRateLimiters(rateLimiters *sync.Map, now time.Time, maxIdle time.Duration) {
	rateLimiters.Range(func(key, value interface{}) bool {
		if value.(*clientLimiter).idleSince(now) > maxIdle {
			rateLimiters.Delete(key)
		}
		return true
	})
}
