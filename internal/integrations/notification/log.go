package notification

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// LogGateway пишет уведомления в лог вместо доставки (локальный запуск)
type LogGateway struct {
	log Logger
}

// NewLogGateway создает транспорт-заглушку
func NewLogGateway(log Logger) *LogGateway {
	return &LogGateway{log: log}
}

// Send логирует письмо
func (g *LogGateway) Send(_ context.Context, n domain.Notification) error {
	if n.Recipient == "" {
		return ErrEmptyRecipient
	}

	msg, err := Render(n)
	if err != nil {
		return err
	}

	g.log.Info("Notification %s to=%s appointment_id=%s subject=%q", n.Event, n.Recipient, n.AppointmentID, msg.Subject)
	return nil
}
