package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"slotbook/internal/handler/httperr"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var (
	errRateLimited        = errs.New("rate limit exceeded")
	errLimiterUnavailable = errs.New("rate limiter unavailable")
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter is a fixed-window limiter shared by every instance through Redis.
type RateLimiter struct {
	rdb      redis.Scripter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool
	logger   *slog.Logger
}

func NewRateLimiter(rdb redis.Scripter, cfg config.RedisConfig, prefix string, logger *slog.Logger) *RateLimiter {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 30
	}
	window := cfg.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		rdb:      rdb,
		limit:    limit,
		window:   window,
		prefix:   prefix,
		failOpen: cfg.FailOpen,
		logger:   logger,
	}
}

// Middleware counts requests per client IP and route.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.prefix + ":" + c.FullPath() + ":" + c.ClientIP()
		count, err := rl.incr(c.Request.Context(), key)
		if err != nil {
			rl.logger.Warn("redis rate limiter error", "error", err)
			if rl.failOpen {
				c.Next()
				return
			}
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Rate limiter unavailable", nil)
			return
		}
		if count > int64(rl.limit) {
			c.Header("Retry-After", strconv.Itoa(int(rl.window/time.Second)))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := fixedWindowScript.Run(ctx, rl.rdb, []string{key}, rl.window.Milliseconds()).Result()
	if err != nil {
		return 0, errs.Mark(err, errLimiterUnavailable)
	}
	switch v := res.(type) {
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected redis script result type %T", res)
	}
}
