package get_garage_appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidGarageID  = "некорректный ID гаража"
	msgMissingUserEmail = "отсутствует идентификатор пользователя"
	msgInvalidParams    = "некорректные параметры запроса"
	msgGarageNotFound   = "гараж не найден"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/garages/{garageId}/appointments
// Query params: date (YYYY-MM-DD), week (bool), limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем garageId из URL
	vars := mux.Vars(r)
	garageID, err := uuid.Parse(vars["garageId"])
	if err != nil {
		h.logger.Warn("GET /garages/{id}/appointments - Invalid garage ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGarageID)
		return
	}

	// Получаем email из контекста (через middleware Auth)
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("GET /garages/{id}/appointments - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	serviceReq, err := ToServiceRequest(r, garageID, email)
	if err != nil {
		h.logger.Warn("GET /garages/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем записи гаража (сервис сам проверит, что пользователь - владелец)
	result, err := h.service.ListGarageAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /garages/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, appointments.ErrGarageNotFound):
			h.logger.Warn("GET /garages/{id}/appointments - Garage not found: garage_id=%s", garageID)
			handlers.RespondNotFound(w, msgGarageNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /garages/{id}/appointments - Access denied: garage_id=%s, user=%s", garageID, email)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /garages/{id}/appointments - Failed to get appointments: garage_id=%s, error=%v",
				garageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /garages/{id}/appointments - Appointments retrieved successfully: garage_id=%s, count=%d",
		garageID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
