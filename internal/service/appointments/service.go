package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	garageRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/garage"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис чтения записей
type Service struct {
	appointmentRepo AppointmentRepository
	employeeRepo    EmployeeRepository
	garageRepo      GarageRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	employeeRepo EmployeeRepository,
	garageRepo GarageRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		employeeRepo:    employeeRepo,
		garageRepo:      garageRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Доступна клиенту, назначенному сотруднику и владельцу гаража
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, actorEmail string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for actor=%s", id, actorEmail)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkAccess(ctx, appointment, actorEmail); err != nil {
		s.logger.Warn("GetByID: access denied for actor=%s to appointment id=%s", actorEmail, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(appointment), nil
}

// ListEmployeeAppointments получает записи, назначенные сотруднику
func (s *Service) ListEmployeeAppointments(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListEmployeeAppointments: fetching for employee=%s", req.Email)

	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	employee, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("ListEmployeeAppointments: employee=%s not found", req.Email)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("ListEmployeeAppointments: repository error for employee=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: ListEmployeeAppointments - employee repository error: %v", ErrInternal, err)
	}

	if !employee.Role.IsMechanic() {
		s.logger.Warn("ListEmployeeAppointments: user=%s with role=%s is not a mechanic", req.Email, employee.Role)
		return nil, ErrAccessDenied
	}

	page := domain.Page{Limit: req.Limit, Offset: req.Offset}.Normalize()
	appointments, err := s.appointmentRepo.ListByEmployee(ctx, employee.ID, page)
	if err != nil {
		s.logger.Error("ListEmployeeAppointments: repository error for employee=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: ListEmployeeAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListEmployeeAppointments: fetched %d appointments for employee=%s", len(appointments), req.Email)
	return models.FromDomainAppointmentList(appointments, page), nil
}

// ListCustomerAppointments получает записи клиента
func (s *Service) ListCustomerAppointments(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListCustomerAppointments: fetching for customer=%s", req.Email)

	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	page := domain.Page{Limit: req.Limit, Offset: req.Offset}.Normalize()
	appointments, err := s.appointmentRepo.ListByCustomer(ctx, req.Email, page)
	if err != nil {
		s.logger.Error("ListCustomerAppointments: repository error for customer=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: ListCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCustomerAppointments: fetched %d appointments for customer=%s", len(appointments), req.Email)
	return models.FromDomainAppointmentList(appointments, page), nil
}

// ListGarageAppointments получает записи гаража за дату или неделю
// Доступно только владельцу гаража
func (s *Service) ListGarageAppointments(ctx context.Context, req *models.GarageAppointmentsRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("ListGarageAppointments: fetching for garage=%s, actor=%s", req.GarageID, req.ActorEmail)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s, week=%t", req.Date.Format(domain.DateFormat), req.Week)
	}
	s.logger.Info("%s", logMsg)

	if req.Week && req.Date == nil {
		return nil, fmt.Errorf("%w: week filter requires a date", ErrInvalidInput)
	}

	garage, err := s.garageRepo.GetByID(ctx, req.GarageID)
	if err != nil {
		if errors.Is(err, garageRepo.ErrGarageNotFound) {
			s.logger.Warn("ListGarageAppointments: garage=%s not found", req.GarageID)
			return nil, ErrGarageNotFound
		}
		s.logger.Error("ListGarageAppointments: repository error for garage=%s: %v", req.GarageID, err)
		return nil, fmt.Errorf("%w: ListGarageAppointments - garage repository error: %v", ErrInternal, err)
	}

	if !garage.IsOwnedBy(req.ActorEmail) {
		s.logger.Warn("ListGarageAppointments: actor=%s is not the owner of garage=%s", req.ActorEmail, req.GarageID)
		return nil, ErrAccessDenied
	}

	filter := req.ToDomainFilter()
	appointments, err := s.appointmentRepo.ListByGarage(ctx, filter)
	if err != nil {
		s.logger.Error("ListGarageAppointments: repository error for garage=%s: %v", req.GarageID, err)
		return nil, fmt.Errorf("%w: ListGarageAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListGarageAppointments: fetched %d appointments for garage=%s", len(appointments), req.GarageID)
	return models.FromDomainAppointmentList(appointments, filter.Page), nil
}

// Вспомогательные методы

// checkAccess проверяет, что пользователь - клиент, назначенный сотрудник или владелец гаража
func (s *Service) checkAccess(ctx context.Context, appointment *domain.Appointment, actorEmail string) error {
	if strings.TrimSpace(actorEmail) == "" {
		return ErrAccessDenied
	}

	// Клиент видит свою запись
	if appointment.BelongsToCustomer(actorEmail) {
		return nil
	}

	employee, err := s.employeeRepo.GetByID(ctx, appointment.EmployeeID)
	switch {
	case err == nil:
		if strings.EqualFold(employee.Email, actorEmail) {
			return nil
		}
	case errors.Is(err, employeeRepo.ErrEmployeeNotFound):
		s.logger.Warn("checkAccess: assignee id=%s of appointment id=%s not found", appointment.EmployeeID, appointment.ID)
	default:
		s.logger.Error("checkAccess: failed to get employee id=%s: %v", appointment.EmployeeID, err)
		return fmt.Errorf("%w: checkAccess - employee repository error: %v", ErrInternal, err)
	}

	garage, err := s.garageRepo.GetByID(ctx, appointment.GarageID)
	switch {
	case err == nil:
		if garage.IsOwnedBy(actorEmail) {
			return nil
		}
	case errors.Is(err, garageRepo.ErrGarageNotFound):
		s.logger.Warn("checkAccess: garage id=%s of appointment id=%s not found", appointment.GarageID, appointment.ID)
	default:
		s.logger.Error("checkAccess: failed to get garage id=%s: %v", appointment.GarageID, err)
		return fmt.Errorf("%w: checkAccess - garage repository error: %v", ErrInternal, err)
	}

	return ErrAccessDenied
}
