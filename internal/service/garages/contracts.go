package garages

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// GarageRepository интерфейс репозитория гаражей
type GarageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Garage, error)
}

// Calendar проверка расписания
type Calendar interface {
	IsOpen(garage *domain.Garage, date time.Time) (bool, *domain.ScheduleEntry)
	IsOpenAt(garage *domain.Garage, t time.Time) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
