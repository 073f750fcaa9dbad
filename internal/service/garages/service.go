package garages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	garageRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/garage"
	"github.com/m04kA/SMC-AppointmentService/internal/service/garages/models"
)

// Service сервис расписания гаражей (только чтение)
type Service struct {
	garageRepo   GarageRepository
	calendar     Calendar
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса гаражей
func NewService(garageRepo GarageRepository, calendar Calendar, logger Logger) *Service {
	return &Service{
		garageRepo:   garageRepo,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetSchedule получает недельное расписание гаража и признак "открыт сейчас"
// Если передана date - дополнительно отвечает, работает ли гараж в эту дату
func (s *Service) GetSchedule(ctx context.Context, garageID uuid.UUID, date *time.Time) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for garage=%s", garageID)

	garage, err := s.garageRepo.GetByID(ctx, garageID)
	if err != nil {
		if errors.Is(err, garageRepo.ErrGarageNotFound) {
			s.logger.Warn("GetSchedule: garage=%s not found", garageID)
			return nil, ErrGarageNotFound
		}
		s.logger.Error("GetSchedule: repository error for garage=%s: %v", garageID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	// Некорректное расписание не блокирует чтение, но должно быть замечено
	if err := domain.ValidateSchedule(garage.Schedule); err != nil {
		s.logger.Warn("GetSchedule: garage=%s has invalid schedule: %v", garageID, err)
	}

	now := s.timeProvider.Now()

	resp := models.FromDomainGarage(garage)
	resp.OpenNow = s.calendar.IsOpenAt(garage, now)
	resp.CheckedAt = now

	if date != nil {
		open, _ := s.calendar.IsOpen(garage, *date)
		resp.OpenOn = &open
	}

	s.logger.Info("GetSchedule: garage=%s, open_now=%t", garageID, resp.OpenNow)
	return resp, nil
}
