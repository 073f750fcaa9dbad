package update_appointment_status

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateStatus "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse HTTP модель записи
type AppointmentResponse struct {
	ID            uuid.UUID `json:"id"`
	GarageID      uuid.UUID `json:"garageId"`
	VehicleID     uuid.UUID `json:"vehicleId"`
	EmployeeID    uuid.UUID `json:"employeeId"`
	Area          string    `json:"area"`
	SelectedDate  string    `json:"selectedDate"`
	Details       string    `json:"details,omitempty"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customerEmail"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     string    `json:"updatedAt"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Appointment AppointmentResponse `json:"appointment"`
	Outcome     string              `json:"outcome"` // updated | reassigned | reassignment_exhausted
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(appointmentID uuid.UUID, actorEmail string) *updateStatus.Request {
	return &updateStatus.Request{
		AppointmentID:       appointmentID,
		Status:              r.Status,
		ActingEmployeeEmail: actorEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Appointment: AppointmentResponse{
			ID:            resp.ID,
			GarageID:      resp.GarageID,
			VehicleID:     resp.VehicleID,
			EmployeeID:    resp.EmployeeID,
			Area:          resp.Area,
			SelectedDate:  resp.SelectedDate.Format(domain.DateFormat),
			Details:       resp.Details,
			Status:        resp.Status,
			CustomerEmail: resp.CustomerEmail,
			CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
		},
		Outcome: string(resp.Outcome),
	}
}
