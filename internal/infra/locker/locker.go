package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const (
	DefaultTTL           = 10 * time.Second
	DefaultRetryInterval = 50 * time.Millisecond

	keyPrefix = "appointments:select"
)

// ReleaseFunc снимает взятую блокировку
type ReleaseFunc func(ctx context.Context) error

// SelectionKey ключ блокировки выбора сотрудника для (гараж, направление, дата)
func SelectionKey(garageID uuid.UUID, area domain.Area, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, garageID, area, domain.DateOnly(date).Format(domain.DateFormat))
}

// Удаляем ключ только если он всё ещё принадлежит нам
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker распределённая блокировка на SET NX PX
// TTL ограничивает время удержания упавшим держателем
type RedisLocker struct {
	rdb           *redis.Client
	ttl           time.Duration
	retryInterval time.Duration
}

// NewRedisLocker создает блокировку поверх клиента Redis
func NewRedisLocker(rdb *redis.Client, ttl, retryInterval time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}
	return &RedisLocker{rdb: rdb, ttl: ttl, retryInterval: retryInterval}
}

// Acquire берёт блокировку, повторяя попытки до отмены контекста
func (l *RedisLocker) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	token := uuid.NewString()

	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrNotAcquired, key, ctx.Err())
			}
			return nil, fmt.Errorf("%w: Acquire - set %s: %v", ErrRedis, key, err)
		}
		if ok {
			return l.releaseFunc(key, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", ErrNotAcquired, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) releaseFunc(key, token string) ReleaseFunc {
	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("%w: Release - %s: %v", ErrRedis, key, err)
		}
		return nil
	}
}

// Ping проверяет доступность Redis
func (l *RedisLocker) Ping(ctx context.Context) error {
	if err := l.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: Ping: %v", ErrRedis, err)
	}
	return nil
}

// Noop блокировка для запуска без Redis: ничего не сериализует
type Noop struct{}

// Acquire всегда успешен
func (Noop) Acquire(ctx context.Context, key string) (ReleaseFunc, error) {
	return func(context.Context) error { return nil }, nil
}

// Ping всегда успешен
func (Noop) Ping(ctx context.Context) error {
	return nil
}
