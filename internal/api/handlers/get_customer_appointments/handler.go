package get_customer_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgMissingUserEmail = "отсутствует идентификатор пользователя"
	msgInvalidParams    = "некорректные параметры пагинации"
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

// Handle GET /api/v1/customers/me/appointments
// Query params: limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("GET /customers/me/appointments - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	limit, offset, err := handlers.ParsePagination(r)
	if err != nil {
		h.logger.Warn("GET /customers/me/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListCustomerAppointments(r.Context(), &models.ListRequest{
		Email:  email,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.logger.Error("GET /customers/me/appointments - Failed to get appointments: user=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers/me/appointments - Appointments retrieved successfully: user=%s, count=%d",
		email, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
