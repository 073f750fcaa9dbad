package get_garage_schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/service/garages/models"
)

type GarageService interface {
	GetSchedule(ctx context.Context, garageID uuid.UUID, date *time.Time) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
