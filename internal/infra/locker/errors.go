package locker

import "errors"

var (
	// ErrNotAcquired возвращается, когда блокировку не удалось взять до отмены контекста
	ErrNotAcquired = errors.New("locker: lock not acquired")

	// ErrRedis возвращается при ошибке обращения к Redis
	ErrRedis = errors.New("locker: redis error")
)
