package notifications

import "errors"

var (
	// ErrShutdownTimeout возвращается, когда отправки не завершились до дедлайна
	ErrShutdownTimeout = errors.New("notifications: shutdown timed out")
)
