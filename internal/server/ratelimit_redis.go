package server

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewRedisClient connects to redisURL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

// windowLimiter counts requests per client address in fixed windows kept in
// Redis, so every advisor process behind a balancer enforces one limit. A
// window admits burst requests and lasts burst/perSecond seconds, which
// keeps the long-run rate of the in-memory token bucket.
type windowLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

func newWindowLimiter(client *redis.Client, perSecond float64, burst int) *windowLimiter {
	if burst < 1 {
		burst = 1
	}
	window := time.Duration(float64(burst) / perSecond * float64(time.Second)).Round(time.Second)
	if window < time.Second {
		window = time.Second
	}
	return &windowLimiter{client: client, max: int64(burst), window: window}
}

func rateKey(addr string) string {
	return "rl:" + addr
}

// allow lets requests through when Redis cannot be reached.
func (l *windowLimiter) allow(ctx context.Context, addr string) (bool, time.Duration) {
	key := rateKey(addr)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		log.Warn().Err(err).Str("addr", addr).Msg("rate limit counter unavailable")
		return true, 0
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			log.Warn().Err(err).Str("addr", addr).Msg("setting rate limit window")
		}
	}
	if count <= l.max {
		return true, 0
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return false, l.window
	}
	if ttl < 0 {
		// The counter lost its expiry; start a fresh window.
		l.client.Expire(ctx, key, l.window)
		return false, l.window
	}
	return false, ttl
}

func (l *windowLimiter) stop() {}
