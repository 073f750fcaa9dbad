package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/locker"
	garageRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/garage"
	userClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
	"github.com/m04kA/SMC-AppointmentService/internal/service/employees"
	"github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
)

// UseCase use case для создания записи с автоматическим назначением сотрудника
type UseCase struct {
	appointmentRepo AppointmentRepository
	garageRepo      GarageRepository
	userClient      UserServiceClient
	calendar        Calendar
	finder          EmployeeFinder
	balancer        LoadBalancer
	locker          Locker
	txManager       TransactionManager
	dispatcher      NotificationDispatcher
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	garageRepo GarageRepository,
	userClient UserServiceClient,
	calendar Calendar,
	finder EmployeeFinder,
	balancer LoadBalancer,
	locker Locker,
	txManager TransactionManager,
	dispatcher NotificationDispatcher,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		garageRepo:      garageRepo,
		userClient:      userClient,
		calendar:        calendar,
		finder:          finder,
		balancer:        balancer,
		locker:          locker,
		txManager:       txManager,
		dispatcher:      dispatcher,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Запись сохраняется только после успешного назначения сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: garage=%s, vehicle=%s, area=%q, date=%s",
		req.GarageID, req.VehicleID, req.Area, req.SelectedDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.SelectedDate)

	// 2. Разбираем направление на границе
	area, err := domain.ParseArea(req.Area)
	if err != nil {
		uc.logger.Warn("CreateAppointment: invalid area=%q", req.Area)
		return nil, fmt.Errorf("%w: %q", ErrInvalidArea, req.Area)
	}

	// 3. Получаем гараж с расписанием
	garage, err := uc.garageRepo.GetByID(ctx, req.GarageID)
	if err != nil {
		if errors.Is(err, garageRepo.ErrGarageNotFound) {
			uc.logger.Warn("CreateAppointment: garage id=%s not found", req.GarageID)
			return nil, ErrGarageNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get garage id=%s: %v", req.GarageID, err)
		return nil, fmt.Errorf("%w: failed to get garage: %w", ErrInternal, err)
	}

	// 4. Получаем автомобиль
	vehicle, err := uc.userClient.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, userClient.ErrVehicleNotFound) {
			uc.logger.Warn("CreateAppointment: vehicle id=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get vehicle id=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %w", ErrInternal, err)
	}

	// 5. Проверяем владельца автомобиля, если вызывающий известен
	if req.CustomerEmail != "" && !strings.EqualFold(vehicle.OwnerEmail, req.CustomerEmail) {
		uc.logger.Warn("CreateAppointment: vehicle id=%s is not owned by %s", req.VehicleID, req.CustomerEmail)
		return nil, ErrVehicleNotOwned
	}

	customerEmail := vehicle.OwnerEmail
	if customerEmail == "" {
		customerEmail = req.CustomerEmail
	}

	// 6. Проверяем расписание гаража
	if open, _ := uc.calendar.IsOpen(garage, date); !open {
		uc.logger.Warn("CreateAppointment: garage id=%s is closed on %s", garage.ID, date.Format(domain.DateFormat))
		return nil, ErrGarageClosed
	}

	// 7. Блокируем выбор сотрудника на (гараж, направление, дата)
	release, err := uc.locker.Acquire(ctx, locker.SelectionKey(garage.ID, area, date))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to acquire selection lock: %v", err)
		return nil, fmt.Errorf("%w: failed to acquire selection lock: %w", ErrInternal, err)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			uc.logger.Warn("CreateAppointment: failed to release selection lock: %v", err)
		}
	}()

	var (
		result   *domain.Appointment
		assignee *domain.Employee
	)

	// 8. Выбор сотрудника и сохранение в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Квалифицированные сотрудники гаража
		candidates, err := uc.finder.Find(txCtx, garage.ID, area)
		if err != nil {
			if errors.Is(err, employees.ErrInvalidArea) {
				return fmt.Errorf("%w: %w", ErrInvalidArea, err)
			}
			uc.logger.Error("CreateAppointment: failed to find employees: %v", err)
			return fmt.Errorf("%w: failed to find employees: %w", ErrInternal, err)
		}

		if len(candidates) == 0 {
			uc.logger.Warn("CreateAppointment: no %s employees at garage id=%s", area, garage.ID)
			return ErrNoEmployeeAvailable
		}

		// 8.2. Наименее загруженный сотрудник
		selected, err := uc.balancer.Select(txCtx, candidates, date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to select employee: %v", err)
			return fmt.Errorf("%w: failed to select employee: %w", ErrInternal, err)
		}

		// 8.3. Сохраняем запись в статусе PENDING
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			GarageID:      garage.ID,
			VehicleID:     vehicle.ID,
			EmployeeID:    selected.ID,
			Area:          area,
			SelectedDate:  date,
			Details:       req.Details,
			Status:        domain.StatusPending,
			CustomerEmail: customerEmail,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		assignee = selected
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncAppointmentsCreated()
	uc.logger.Info("CreateAppointment: successfully created appointment id=%s, employee=%s", result.ID, assignee.ID)

	// 9. Уведомление после коммита, не дожидаясь доставки
	uc.dispatcher.Dispatch(notifications.AppointmentAssigned(result, assignee.Email, garage.Name))

	return &Response{
		ID:            result.ID,
		GarageID:      result.GarageID,
		VehicleID:     result.VehicleID,
		EmployeeID:    result.EmployeeID,
		Area:          string(result.Area),
		SelectedDate:  result.SelectedDate,
		Details:       result.Details,
		Status:        string(result.Status),
		CustomerEmail: result.CustomerEmail,
		EmployeeName:  assignee.FullName(),
		GarageName:    garage.Name,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
