package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/lukaszlop/ketoggler/internal/logging"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// Decision is the outcome of one rate limit check
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter counts requests per key
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// RedisLimiter is a fixed window counter shared by every replica
type RedisLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	now    func() time.Time
}

// NewRedisLimiter creates a new redis backed limiter
func NewRedisLimiter(redisClient *redis.Client, config RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{
		redis:  redisClient,
		config: config,
		now:    time.Now,
	}
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	pipe := rl.redis.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("rate limit %s: %w", redisKey, err)
	}

	count := int(incr.Val())
	return Decision{
		Allowed:   count <= rl.config.Limit,
		Limit:     rl.config.Limit,
		Remaining: max(rl.config.Limit-count, 0),
		Reset:     windowStart.Add(rl.config.Window),
	}, nil
}

// LocalLimiter is an in-process token bucket per key, used when redis is
// not configured. Limits are not shared between replicas.
type LocalLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	config   RateLimitConfig
	every    rate.Limit
}

// NewLocalLimiter builds a LocalLimiter. A Limit below 1 is raised to 1.
func NewLocalLimiter(config RateLimitConfig) *LocalLimiter {
	if config.Limit < 1 {
		config.Limit = 1
	}
	return &LocalLimiter{
		limiters: make(map[string]*rate.Limiter),
		config:   config,
		every:    rate.Every(config.Window / time.Duration(config.Limit)),
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.every, l.config.Limit)
		l.limiters[key] = lim
	}
	l.mu.Unlock()

	now := time.Now()
	allowed := lim.AllowN(now, 1)
	tokens := lim.TokensAt(now)

	// next full token
	wait := time.Duration(0)
	if tokens < 1 {
		wait = time.Duration((1 - tokens) * float64(l.config.Window) / float64(l.config.Limit))
	}

	return Decision{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: int(math.Max(0, math.Floor(tokens))),
		Reset:     now.Add(wait),
	}, nil
}

// NewRecipeCreationLimiter limits recipe creation to limit per user per
// hour, in redis when a client is given. It returns nil when limit is not
// positive.
func NewRecipeCreationLimiter(redisClient *redis.Client, limit int) Limiter {
	if limit <= 0 {
		return nil
	}
	config := RateLimitConfig{
		Window:    time.Hour,
		Limit:     limit,
		KeyPrefix: "rate_limit:recipe_creation",
	}
	if redisClient != nil {
		return NewRedisLimiter(redisClient, config)
	}
	return NewLocalLimiter(config)
}

// RateLimit enforces limiter per caller. It must run after Identity. A
// failing limiter lets the request through.
func RateLimit(limiter Limiter, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "user not authenticated"})
			return
		}

		d, err := limiter.Allow(c.Request.Context(), userID)
		if err != nil {
			logging.FromContext(c.Request.Context(), log).WithError(err).Warn("rate limit check failed")
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(d.Reset.Unix(), 10))

		if !d.Allowed {
			rateLimitRejects.Inc()
			retryAfter := int(math.Ceil(time.Until(d.Reset).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d requests", d.Limit),
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}
