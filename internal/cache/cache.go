// Package cache wraps the shanten engine's lookup behind an interface with
// two implementations: an in-process default and a Redis-backed decorator,
// grounded on the teacher's RedisManager connection handling but trimmed to
// the single get/set/close surface this lookup needs.
package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mahjong/internal/applog"
	"mahjong/internal/meld"
	"mahjong/internal/shanten"
	"mahjong/internal/tiles"
)

// ShantenLookup answers a shanten query, the one operation worth caching:
// it's pure and keyed entirely by its arguments.
type ShantenLookup interface {
	Shanten(ctx context.Context, free tiles.CountArray, declared []meld.Meld) (int8, error)
}

// LocalTable calls the in-process recursive reference directly. It is
// always correct and is the default when no Redis address is configured.
type LocalTable struct{}

func (LocalTable) Shanten(_ context.Context, free tiles.CountArray, declared []meld.Meld) (int8, error) {
	return shanten.Shanten(free, declared)
}

// RedisTable checks Redis first and falls through to fallback on a miss or
// on any Redis error, populating Redis asynchronously afterward. A down
// Redis instance never turns into an error for the caller; the Redis read
// itself is synchronous and waits for the client's own timeouts.
type RedisTable struct {
	Client   *redis.Client
	Fallback ShantenLookup
	TTL      time.Duration
}

// NewRedisTable dials addr and wraps fallback (typically LocalTable{}).
func NewRedisTable(addr, password string, db int, fallback ShantenLookup, ttl time.Duration) *RedisTable {
	cli := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	return &RedisTable{Client: cli, Fallback: fallback, TTL: ttl}
}

func key(free tiles.CountArray, declared []meld.Meld) string {
	var b strings.Builder
	b.WriteString("shanten:")
	b.WriteString(free.Render())
	for _, m := range declared {
		b.WriteByte('|')
		for _, t := range m.Tiles {
			b.WriteString(t.String())
		}
	}
	return b.String()
}

func (r *RedisTable) Shanten(ctx context.Context, free tiles.CountArray, declared []meld.Meld) (int8, error) {
	k := key(free, declared)

	if v, err := r.Client.Get(ctx, k).Result(); err == nil {
		if n, convErr := strconv.Atoi(v); convErr == nil {
			return int8(n), nil
		}
	}

	result, err := r.Fallback.Shanten(ctx, free, declared)
	if err != nil {
		return 0, err
	}

	go func(k string, v int8) {
		setCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.Client.Set(setCtx, k, strconv.Itoa(int(v)), r.TTL).Err(); err != nil {
			applog.Warn("cache: failed to populate shanten entry: %v", err)
		}
	}(k, result)

	return result, nil
}

func (r *RedisTable) Close() error {
	if r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
