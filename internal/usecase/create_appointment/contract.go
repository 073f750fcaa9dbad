package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/locker"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// GarageRepository интерфейс репозитория гаражей
type GarageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Garage, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*userservice.Vehicle, error)
}

// Calendar проверка рабочих дней гаража
type Calendar interface {
	IsOpen(garage *domain.Garage, date time.Time) (bool, *domain.ScheduleEntry)
}

// EmployeeFinder поиск квалифицированных сотрудников
type EmployeeFinder interface {
	Find(ctx context.Context, garageID uuid.UUID, area domain.Area) ([]*domain.Employee, error)
}

// LoadBalancer выбор наименее загруженного сотрудника
type LoadBalancer interface {
	Select(ctx context.Context, candidates []*domain.Employee, date time.Time) (*domain.Employee, error)
}

// Locker блокировка выбора сотрудника на (гараж, направление, дата)
type Locker interface {
	Acquire(ctx context.Context, key string) (locker.ReleaseFunc, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// NotificationDispatcher асинхронная отправка уведомлений
type NotificationDispatcher interface {
	Dispatch(n domain.Notification)
}

// MetricsRecorder интерфейс для бизнес-метрик
type MetricsRecorder interface {
	IncAppointmentsCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
