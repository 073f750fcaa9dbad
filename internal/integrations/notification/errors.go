package notification

import "errors"

var (
	// ErrUnknownEvent возвращается для события без шаблона
	ErrUnknownEvent = errors.New("notification: unknown event type")

	// ErrEmptyRecipient возвращается, когда не указан получатель
	ErrEmptyRecipient = errors.New("notification: empty recipient")

	// ErrMarshal возвращается при ошибке сериализации события
	ErrMarshal = errors.New("notification: failed to marshal event")

	// ErrSend возвращается при ошибке доставки
	ErrSend = errors.New("notification: failed to send")
)
