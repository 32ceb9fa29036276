// Package cache provides a Redis cache-aside layer. A cache that can't reach Redis bypasses
// itself and every read goes to the source.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL is used when no ttl is configured
const DefaultTTL = 10 * time.Minute

// Config defines Redis connection parameters
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Redis wraps a go-redis client. A nil *Redis or one without a client is a valid bypass cache.
type Redis struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// New connects to Redis. If Redis doesn't answer the ping, the returned cache bypasses itself.
func New(ctx context.Context, cfg Config) *Redis {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if cfg.Addr == "" {
		return &Redis{ttl: ttl}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		lgr.Printf("[WARN] redis at %s unavailable, bypassing cache: %v", cfg.Addr, err)
		_ = client.Close()
		return &Redis{ttl: ttl}
	}
	lgr.Printf("[INFO] connected to redis at %s, ttl %v", cfg.Addr, ttl)
	return &Redis{client: client, ttl: ttl}
}

// Enabled reports whether the cache talks to Redis
func (r *Redis) Enabled() bool {
	return r != nil && r.client != nil
}

// Ping verifies the connection
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

// Close closes the client
func (r *Redis) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}

// GetJSON reads key into out. Returns false on a miss.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Enabled() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value under key with the cache ttl
func (r *Redis) SetJSON(ctx context.Context, key string, value any) error {
	if !r.Enabled() {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, b, r.ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		lgr.Printf("[WARN] redis error, serving from source: %v", err)
	}
}

// Fetch returns the cached value of key or loads, caches and returns it. Cache failures are
// logged and never fail the call; load errors are returned as is and nothing is cached.
func Fetch[T any](ctx context.Context, r *Redis, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	if hit, err := r.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	val, err := load(ctx)
	if err != nil {
		return val, err
	}
	if err := r.SetJSON(ctx, key, val); err != nil {
		lgr.Printf("[DEBUG] can't cache %s: %v", key, err)
	}
	return val, nil
}
