package get_garage_appointments

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request, garageID uuid.UUID, actorEmail string) (*models.GarageAppointmentsRequest, error) {
	req := &models.GarageAppointmentsRequest{
		GarageID:   garageID,
		ActorEmail: actorEmail,
	}

	q := r.URL.Query()

	// Парсим date если указана
	if dateStr := q.Get("date"); dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		req.Date = &date
	}

	// Парсим week если указан
	if weekStr := q.Get("week"); weekStr != "" {
		week, err := strconv.ParseBool(weekStr)
		if err != nil {
			return nil, fmt.Errorf("invalid week value: %w", err)
		}
		req.Week = week
	}

	limit, offset, err := handlers.ParsePagination(r)
	if err != nil {
		return nil, err
	}
	req.Limit, req.Offset = limit, offset

	return req, nil
}
