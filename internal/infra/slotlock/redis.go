package slotlock

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// releaseScript deletes the key only if it still holds our token.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0`

// Commands is the part of *redis.Client the locker needs.
type Commands interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type RedisLocker struct {
	rdb Commands
	ttl time.Duration
	log *logrus.Entry
}

func NewRedisLocker(rdb Commands, ttl time.Duration, log *logrus.Entry) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl, log: log}
}

// Key is the redis key for a slot.
func Key(slot domain.Slot) string {
	return fmt.Sprintf("slot:%d:%s:%s", slot.DoctorID, slot.DateKey(), slot.Time)
}

func (l *RedisLocker) Acquire(ctx context.Context, slot domain.Slot) (func(), bool, error) {
	key := Key(slot)
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("setnx %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The request context may already be done; release on a fresh one.
		rctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := l.rdb.Eval(rctx, releaseScript, []string{key}, token).Err(); err != nil && err != redis.Nil {
			l.log.WithError(err).WithField("key", key).Warn("slot lock release failed")
		}
	}
	return release, true, nil
}

// NewClient parses REDIS_URL and pings the server.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

var _ domain.SlotLocker = (*RedisLocker)(nil)
