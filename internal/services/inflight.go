package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// InFlightGuard allows at most one outstanding summary per session key.
// Acquire hands out a token; Release frees the key only while that token
// still holds it, so a holder whose lock expired cannot free a newer one.
type InFlightGuard interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string) error
}

type MemoryGuard struct {
	mu     sync.Mutex
	active map[string]string
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{active: make(map[string]string)}
}

func (g *MemoryGuard) Acquire(ctx context.Context, key string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return "", false, nil
	}
	token := uuid.NewString()
	g.active[key] = token
	return token, true, nil
}

func (g *MemoryGuard) Release(ctx context.Context, key, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active[key] == token {
		delete(g.active, key)
	}
	return nil
}

// RedisGuard shares the guard between server instances. The TTL bounds how
// long a crashed instance can keep a session locked and must outlast the
// longest request the server will serve.
type RedisGuard struct {
	redis *redis.Client
	ttl   time.Duration
}

const inFlightKeyPrefix = "summarize:inflight:"

// releaseScript deletes the key only if it still carries the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	return &RedisGuard{redis: client, ttl: ttl}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := g.redis.SetNX(ctx, inFlightKeyPrefix+key, token, g.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire in-flight lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (g *RedisGuard) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, g.redis, []string{inFlightKeyPrefix + key}, token).Err(); err != nil {
		return fmt.Errorf("release in-flight lock: %w", err)
	}
	return nil
}
