package employees

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByGarageAndRole(ctx context.Context, garageID uuid.UUID, role domain.Role) ([]*domain.Employee, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
