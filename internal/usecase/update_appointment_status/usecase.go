package update_appointment_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/locker"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
)

// UseCase use case смены статуса записи с переназначением при отказе
type UseCase struct {
	appointmentRepo AppointmentRepository
	employeeRepo    EmployeeRepository
	garageRepo      GarageRepository
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
	employeeRepo EmployeeRepository,
	garageRepo GarageRepository,
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
		employeeRepo:    employeeRepo,
		garageRepo:      garageRepo,
		finder:          finder,
		balancer:        balancer,
		locker:          locker,
		txManager:       txManager,
		dispatcher:      dispatcher,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет смену статуса
// CANCELLED от назначенного сотрудника запускает переназначение; отсутствие
// кандидатов - штатный исход OutcomeReassignmentExhausted, а не ошибка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointmentStatus: appointment=%s, status=%q, actor=%s",
		req.AppointmentID, req.Status, req.ActingEmployeeEmail)

	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateAppointmentStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Предварительно читаем запись: ключ блокировки зависит от гаража, направления и даты
	current, err := uc.getAppointment(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Проверяем права и окончательность до блокировки слота
	if err := uc.authorize(ctx, current, req.ActingEmployeeEmail); err != nil {
		return nil, err
	}
	if current.IsCancelled() {
		uc.logger.Warn("UpdateAppointmentStatus: appointment id=%s is already cancelled", current.ID)
		return nil, ErrAppointmentFinal
	}

	cancel := status == domain.StatusCancelled
	garageName := ""

	if cancel {
		// 4. Название гаража для уведомлений
		garage, err := uc.garageRepo.GetByID(ctx, current.GarageID)
		if err != nil {
			uc.logger.Error("UpdateAppointmentStatus: failed to get garage id=%s: %v", current.GarageID, err)
			return nil, fmt.Errorf("%w: failed to get garage: %w", ErrInternal, err)
		}
		garageName = garage.Name

		// 5. Переназначение конкурирует с созданием записей за тот же слот
		release, err := uc.locker.Acquire(ctx, locker.SelectionKey(current.GarageID, current.Area, current.SelectedDate))
		if err != nil {
			uc.logger.Error("UpdateAppointmentStatus: failed to acquire selection lock: %v", err)
			return nil, fmt.Errorf("%w: failed to acquire selection lock: %w", ErrInternal, err)
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				uc.logger.Warn("UpdateAppointmentStatus: failed to release selection lock: %v", err)
			}
		}()
	}

	var (
		result       *domain.Appointment
		outcome      Outcome
		notification domain.Notification
	)

	// 6. Изменения в одной транзакции, строка записи заблокирована (FOR UPDATE)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Перечитываем запись под блокировкой
		appointment, err := uc.getAppointment(txCtx, req)
		if err != nil {
			return err
		}

		// 6.2. Статус меняет только назначенный сотрудник
		if err := uc.authorize(txCtx, appointment, req.ActingEmployeeEmail); err != nil {
			return err
		}

		// 6.3. Отмененная запись окончательна
		if appointment.IsCancelled() {
			uc.logger.Warn("UpdateAppointmentStatus: appointment id=%s is already cancelled", appointment.ID)
			return ErrAppointmentFinal
		}

		// 6.4. Обычная смена статуса
		if !cancel {
			appointment.Status = status
			if err := uc.save(txCtx, appointment); err != nil {
				return err
			}
			result, outcome = appointment, OutcomeUpdated
			notification = notifications.AppointmentStatusChanged(appointment)
			return nil
		}

		// 6.5. Отказ: ищем другого сотрудника того же направления
		candidates, err := uc.finder.FindExcluding(txCtx, appointment.GarageID, appointment.Area, appointment.EmployeeID)
		if err != nil {
			uc.logger.Error("UpdateAppointmentStatus: failed to find employees: %v", err)
			return fmt.Errorf("%w: failed to find employees: %w", ErrInternal, err)
		}

		if len(candidates) == 0 {
			// 6.6. Переназначить некому - запись отменяется
			appointment.Status = domain.StatusCancelled
			if err := uc.save(txCtx, appointment); err != nil {
				return err
			}
			result, outcome = appointment, OutcomeReassignmentExhausted
			notification = notifications.NoEmployeeAvailable(appointment, garageName)
			return nil
		}

		// 6.7. Наименее загруженный из оставшихся
		selected, err := uc.balancer.Select(txCtx, candidates, appointment.SelectedDate)
		if err != nil {
			uc.logger.Error("UpdateAppointmentStatus: failed to select employee: %v", err)
			return fmt.Errorf("%w: failed to select employee: %w", ErrInternal, err)
		}

		appointment.EmployeeID = selected.ID
		appointment.Status = domain.StatusPending
		if err := uc.save(txCtx, appointment); err != nil {
			return err
		}
		result, outcome = appointment, OutcomeReassigned
		notification = notifications.AppointmentAssigned(appointment, selected.Email, garageName)
		return nil
	})

	if err != nil {
		return nil, err
	}

	if cancel {
		uc.metrics.IncReassignment(string(outcome))
	}
	uc.logger.Info("UpdateAppointmentStatus: appointment id=%s, status=%s, employee=%s, outcome=%s",
		result.ID, result.Status, result.EmployeeID, outcome)

	// 7. Уведомление после коммита, не дожидаясь доставки
	uc.dispatcher.Dispatch(notification)

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
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
		Outcome:       outcome,
	}, nil
}

// getAppointment читает запись и переводит ошибки репозитория
func (uc *UseCase) getAppointment(ctx context.Context, req *Request) (*domain.Appointment, error) {
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: appointment id=%s not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to get appointment id=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
	}
	return appointment, nil
}

// authorize проверяет, что actorEmail принадлежит назначенному сотруднику
func (uc *UseCase) authorize(ctx context.Context, appointment *domain.Appointment, actorEmail string) error {
	assignee, err := uc.employeeRepo.GetByID(ctx, appointment.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("UpdateAppointmentStatus: assignee id=%s not found", appointment.EmployeeID)
			return ErrUnauthorized
		}
		uc.logger.Error("UpdateAppointmentStatus: failed to get assignee id=%s: %v", appointment.EmployeeID, err)
		return fmt.Errorf("%w: failed to get assignee: %w", ErrInternal, err)
	}

	if !appointment.IsAssignedTo(assignee.ID) || !assignee.HasEmail(actorEmail) {
		uc.logger.Warn("UpdateAppointmentStatus: %s is not the assignee of appointment id=%s", actorEmail, appointment.ID)
		return ErrUnauthorized
	}
	return nil
}

func (uc *UseCase) save(ctx context.Context, appointment *domain.Appointment) error {
	if err := uc.appointmentRepo.Update(ctx, appointment); err != nil {
		uc.logger.Error("UpdateAppointmentStatus: failed to update appointment id=%s: %v", appointment.ID, err)
		return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
	}
	return nil
}
