package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidParams       = "некорректные идентификаторы или дата (ожидается YYYY-MM-DD)"
	msgMissingUserEmail    = "отсутствует идентификатор пользователя"
	msgInvalidInput        = "некорректные данные записи"
	msgInvalidArea         = "неизвестное направление работ"
	msgGarageClosed        = "гараж не работает в выбранную дату"
	msgGarageNotFound      = "гараж не найден"
	msgVehicleNotFound     = "автомобиль не найден"
	msgVehicleNotOwned     = "автомобиль принадлежит другому пользователю"
	msgNoEmployeeAvailable = "нет свободных сотрудников нужного направления"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем email из контекста (через middleware Auth)
	email, ok := middleware.GetUserEmail(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user email")
		handlers.RespondUnauthorized(w, msgMissingUserEmail)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(email)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrInvalidArea):
			h.logger.Warn("POST /appointments - Invalid area: area=%q", req.Area)
			handlers.RespondBadRequest(w, msgInvalidArea)

		case errors.Is(err, createAppointment.ErrGarageClosed):
			h.logger.Warn("POST /appointments - Garage closed: garage_id=%s, date=%s", req.GarageID, req.SelectedDate)
			handlers.RespondBadRequest(w, msgGarageClosed)

		case errors.Is(err, createAppointment.ErrGarageNotFound):
			h.logger.Warn("POST /appointments - Garage not found: garage_id=%s", req.GarageID)
			handlers.RespondNotFound(w, msgGarageNotFound)

		case errors.Is(err, createAppointment.ErrVehicleNotFound):
			h.logger.Warn("POST /appointments - Vehicle not found: vehicle_id=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createAppointment.ErrVehicleNotOwned):
			h.logger.Warn("POST /appointments - Vehicle not owned: vehicle_id=%s, user=%s", req.VehicleID, email)
			handlers.RespondForbidden(w, msgVehicleNotOwned)

		case errors.Is(err, createAppointment.ErrNoEmployeeAvailable):
			h.logger.Warn("POST /appointments - No employee available: garage_id=%s, area=%s", req.GarageID, req.Area)
			handlers.RespondConflict(w, msgNoEmployeeAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: garage_id=%s, user=%s, error=%v",
				req.GarageID, email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, employee_id=%s",
		result.ID, result.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
