package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"presence/pkg/platform/sentinel"
)

const (
	DefaultTTL        = 2 * time.Minute
	DefaultRetryDelay = 50 * time.Millisecond
	defaultKeyPrefix  = "presence:attempt-lock:"
)

// releaseScript deletes the key only when it still holds our token, so a lock
// that expired and was re-acquired elsewhere is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker serializes attempts across processes sharing one Redis.
// The TTL must outlast the longest biometric prompt the platform allows.
type RedisLocker struct {
	client     redis.Cmdable
	ttl        time.Duration
	retryDelay time.Duration
	prefix     string
}

type RedisOption func(*RedisLocker)

func WithTTL(ttl time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if ttl > 0 {
			l.ttl = ttl
		}
	}
}

func WithRetryDelay(d time.Duration) RedisOption {
	return func(l *RedisLocker) {
		if d > 0 {
			l.retryDelay = d
		}
	}
}

func WithKeyPrefix(prefix string) RedisOption {
	return func(l *RedisLocker) {
		l.prefix = prefix
	}
}

func NewRedisLocker(client redis.Cmdable, opts ...RedisOption) (*RedisLocker, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	l := &RedisLocker{
		client:     client,
		ttl:        DefaultTTL,
		retryDelay: DefaultRetryDelay,
		prefix:     defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	redisKey := l.prefix + key
	token := uuid.NewString()

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		acquired, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire attempt lock: %w: %w", sentinel.ErrUnavailable, err)
		}
		if acquired {
			return l.unlockFunc(redisKey, token), nil
		}
		timer.Reset(l.retryDelay)
	}
}

func (l *RedisLocker) unlockFunc(redisKey, token string) Unlock {
	var (
		once   sync.Once
		result error
	)
	return func(ctx context.Context) error {
		once.Do(func() {
			released, err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Int()
			if err != nil {
				result = fmt.Errorf("release attempt lock: %w", err)
				return
			}
			if released == 0 {
				result = sentinel.ErrLockNotHeld
			}
		})
		return result
	}
}
