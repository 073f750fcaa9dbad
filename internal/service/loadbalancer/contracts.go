package loadbalancer

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AppointmentCounter источник загрузки сотрудников
type AppointmentCounter interface {
	CountByEmployeesAndPeriod(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
