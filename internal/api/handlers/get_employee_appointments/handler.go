package get_employee_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgMissingUserEmail = "отсутствует идентификатор пользователя"
	msgInvalidParams    = "некорректные параметры пагинации"
	msgEmployeeNotFound = "сотрудник не найден"
	msgForbidden        = "пользователь не является механиком"
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

// Handle GET /api/v1/employees/me/appointments
// Query params: limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("GET /employees/me/appointments - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	limit, offset, err := handlers.ParsePagination(r)
	if err != nil {
		h.logger.Warn("GET /employees/me/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListEmployeeAppointments(r.Context(), &models.ListRequest{
		Email:  email,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrEmployeeNotFound):
			h.logger.Warn("GET /employees/me/appointments - Employee not found: user=%s", email)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /employees/me/appointments - Not a mechanic: user=%s", email)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /employees/me/appointments - Failed to get appointments: user=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /employees/me/appointments - Appointments retrieved successfully: user=%s, count=%d",
		email, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
