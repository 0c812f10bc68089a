package server

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/practica/exercises/internal/llm"
)

// rateLimiter keeps one token bucket per client IP.
type rateLimiter struct {
	clients map[string]*rate.Limiter
	mu      sync.RWMutex
	rps     rate.Limit
	burst   int
	logger  *zap.Logger
}

func newRateLimiter(rps float64, burst int, logger *zap.Logger) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*rate.Limiter),
		rps:     rate.Limit(rps),
		burst:   burst,
		logger:  logger,
	}
}

func (rl *rateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.clients[ip]
	rl.mu.RUnlock()
	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, exists = rl.clients[ip]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(rl.rps, rl.burst)
	rl.clients[ip] = limiter
	return limiter
}

func (rl *rateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.getLimiter(ip).Allow() {
			rl.logger.Warn("rate limit exceeded",
				zap.String("ip", ip),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				newProblem(http.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded"))
			return
		}
		c.Next()
	}
}

// errorHandler serializes errors attached by handlers. Problems pass
// through as-is; known domain errors get mapped to a status, everything
// else collapses to a 500.
func errorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var problem *Problem
		switch {
		case errors.As(err, &problem):
		default:
			var cfgErr *llm.ConfigError
			var provErr *llm.ProviderError
			switch {
			case errors.As(err, &cfgErr):
				problem = badRequest(cfgErr.Error())
			case errors.As(err, &provErr):
				problem = upstreamProblem(string(provErr.Provider), provErr)
			default:
				problem = internalProblem(err)
			}
		}

		if problem.Log != nil {
			logger.Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Error(problem.Log),
			)
		}
		c.JSON(problem.Status, problem)
		c.Abort()
	}
}
