package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	GarageID     string `json:"garageId"`
	VehicleID    string `json:"vehicleId"`
	SelectedDate string `json:"selectedDate"` // "2024-06-10"
	Area         string `json:"area"`         // "ENGINE" или "MECHANIC_ENGINE"
	Details      string `json:"details"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            uuid.UUID `json:"id"`
	GarageID      uuid.UUID `json:"garageId"`
	GarageName    string    `json:"garageName"`
	VehicleID     uuid.UUID `json:"vehicleId"`
	EmployeeID    uuid.UUID `json:"employeeId"`
	EmployeeName  string    `json:"employeeName"`
	Area          string    `json:"area"`
	SelectedDate  string    `json:"selectedDate"`
	Details       string    `json:"details,omitempty"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customerEmail"`
	CreatedAt     string    `json:"createdAt"`
	UpdatedAt     string    `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerEmail string) (*createAppointment.Request, error) {
	garageID, err := uuid.Parse(r.GarageID)
	if err != nil {
		return nil, fmt.Errorf("invalid garageId: %w", err)
	}

	vehicleID, err := uuid.Parse(r.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicleId: %w", err)
	}

	// Парсим дату
	selectedDate, err := domain.ParseDate(r.SelectedDate)
	if err != nil {
		return nil, fmt.Errorf("invalid selectedDate: %w", err)
	}

	return &createAppointment.Request{
		GarageID:      garageID,
		VehicleID:     vehicleID,
		SelectedDate:  selectedDate,
		Area:          r.Area,
		Details:       r.Details,
		CustomerEmail: customerEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            resp.ID,
		GarageID:      resp.GarageID,
		GarageName:    resp.GarageName,
		VehicleID:     resp.VehicleID,
		EmployeeID:    resp.EmployeeID,
		EmployeeName:  resp.EmployeeName,
		Area:          resp.Area,
		SelectedDate:  resp.SelectedDate.Format(domain.DateFormat),
		Details:       resp.Details,
		Status:        resp.Status,
		CustomerEmail: resp.CustomerEmail,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
