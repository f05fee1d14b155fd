package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"band-booking/internal/handler/httperr"
	"band-booking/internal/pkg/config"
	"band-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	rateKeyPrefix   = "ratelimit"
	localLimiterTTL = 10 * time.Minute
)

var ErrRateLimited = errs.New("rate limit exceeded")

// tokenBucketScript refills one token per interval up to capacity and
// returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local interval_ms = tonumber(ARGV[3])
	local ttl_seconds = tonumber(ARGV[4])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 then
		local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + intervals)
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return { allowed, tokens, retry_after_ms }
`)

// RateLimiter throttles per client IP and route scope. It uses a shared
// Redis bucket when available and per-process limiters otherwise.
type RateLimiter struct {
	cfg    config.RateLimitConfig
	rdb    *redis.Client
	logger *slog.Logger

	mu       sync.Mutex
	limiters map[string]*localLimiter
}

type localLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		cfg:      cfg,
		rdb:      rdb,
		logger:   logger,
		limiters: make(map[string]*localLimiter),
	}
}

// Limit never calls c.Next so it can run inside a per-route handler chain.
func (r *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.cfg.Enabled {
			return
		}
		key := rateKeyPrefix + ":" + scope + ":" + c.ClientIP()

		allowed, retryAfter := r.allow(c, key)
		if allowed {
			return
		}

		secs := int(math.Ceil(retryAfter.Seconds()))
		c.Header("Retry-After", strconv.Itoa(max(secs, 1)))
		httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, "Too many requests, please try again later", nil)
	}
}

func (r *RateLimiter) allow(c *gin.Context, key string) (bool, time.Duration) {
	if r.rdb != nil {
		allowed, retryAfter, err := r.allowRedis(c, key)
		if err == nil {
			return allowed, retryAfter
		}
		r.logger.Warn("rate limit redis error, using local limiter",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	return r.allowLocal(key)
}

func (r *RateLimiter) allowRedis(c *gin.Context, key string) (bool, time.Duration, error) {
	ttl := r.cfg.Refill * time.Duration(r.cfg.Capacity+1)
	vals, err := tokenBucketScript.Run(c.Request.Context(), r.rdb, []string{key},
		time.Now().UnixMilli(),
		r.cfg.Capacity,
		r.cfg.Refill.Milliseconds(),
		int64(math.Ceil(ttl.Seconds())),
	).Int64Slice()
	if err != nil {
		return false, 0, err
	}
	if len(vals) != 3 {
		return false, 0, errs.New("unexpected rate limit script result")
	}
	c.Header("X-RateLimit-Limit", strconv.Itoa(r.cfg.Capacity))
	c.Header("X-RateLimit-Remaining", strconv.FormatInt(vals[1], 10))
	return vals[0] == 1, time.Duration(vals[2]) * time.Millisecond, nil
}

func (r *RateLimiter) allowLocal(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for k, l := range r.limiters {
		if now.Sub(l.lastSeen) > localLimiterTTL {
			delete(r.limiters, k)
		}
	}

	l, ok := r.limiters[key]
	if !ok {
		l = &localLimiter{limiter: rate.NewLimiter(rate.Every(r.cfg.Refill), r.cfg.Capacity)}
		r.limiters[key] = l
	}
	l.lastSeen = now

	if l.limiter.AllowN(now, 1) {
		return true, 0
	}
	return false, r.cfg.Refill
}
