package notification

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// Logger интерфейс логгера транспорта
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MessageWriter публикация сообщений в Kafka (*kafka.Writer)
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MailSender отправка письма одному адресату
type MailSender interface {
	Send(to, subject, body string) error
}
