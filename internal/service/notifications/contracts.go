package notifications

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Gateway транспорт доставки уведомлений
type Gateway interface {
	Send(ctx context.Context, n domain.Notification) error
}

// MetricsRecorder учёт результатов отправки
type MetricsRecorder interface {
	IncNotification(event, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
