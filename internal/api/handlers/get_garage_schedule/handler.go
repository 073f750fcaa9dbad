package get_garage_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/garages"
)

const (
	msgInvalidGarageID = "некорректный ID гаража"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgGarageNotFound  = "гараж не найден"
)

type Handler struct {
	service GarageService
	logger  Logger
}

func NewHandler(service GarageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/garages/{garageId}/schedule
// Query params: date (опционально) - проверить, работает ли гараж в эту дату
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	garageID, err := uuid.Parse(vars["garageId"])
	if err != nil {
		h.logger.Warn("GET /garages/{id}/schedule - Invalid garage ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGarageID)
		return
	}

	var date *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := domain.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /garages/{id}/schedule - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.GetSchedule(r.Context(), garageID, date)
	if err != nil {
		if errors.Is(err, garages.ErrGarageNotFound) {
			h.logger.Warn("GET /garages/{id}/schedule - Garage not found: garage_id=%s", garageID)
			handlers.RespondNotFound(w, msgGarageNotFound)
			return
		}

		h.logger.Error("GET /garages/{id}/schedule - Failed to get schedule: garage_id=%s, error=%v", garageID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /garages/{id}/schedule - Schedule retrieved successfully: garage_id=%s", garageID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
