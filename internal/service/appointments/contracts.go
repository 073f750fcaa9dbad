package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, page domain.Page) ([]*domain.Appointment, error)
	ListByCustomer(ctx context.Context, email string, page domain.Page) ([]*domain.Appointment, error)
	ListByGarage(ctx context.Context, filter domain.GarageAppointmentsFilter) ([]*domain.Appointment, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
}

// GarageRepository интерфейс репозитория гаражей
type GarageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Garage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
