package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	updateStatus "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment_status"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserEmail     = "отсутствует идентификатор пользователя"
	msgInvalidStatus        = "недопустимый статус записи"
	msgInvalidInput         = "некорректные данные запроса"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "статус может менять только назначенный сотрудник"
	msgAppointmentFinal     = "запись отменена и не может быть изменена"
)

type Handler struct {
	useCase UpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["appointmentId"])
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем email из контекста (через middleware Auth)
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/status - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID, email))
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: status=%q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateStatus.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateStatus.ErrUnauthorized):
			h.logger.Warn("PATCH /appointments/{id}/status - Not the assignee: appointment_id=%s, user=%s",
				appointmentID, email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateStatus.ErrAppointmentFinal):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment is final: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgAppointmentFinal)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: appointment_id=%s, status=%s, outcome=%s",
		appointmentID, result.Status, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
