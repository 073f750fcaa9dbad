package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// ListRequest запрос списка записей текущего пользователя
type ListRequest struct {
	Email  string
	Limit  int
	Offset int
}

// GarageAppointmentsRequest запрос записей гаража
// Date == nil - все записи; Week - вся неделя (пн-вс), содержащая Date
type GarageAppointmentsRequest struct {
	GarageID   uuid.UUID
	ActorEmail string
	Date       *time.Time
	Week       bool
	Limit      int
	Offset     int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GarageAppointmentsRequest) ToDomainFilter() domain.GarageAppointmentsFilter {
	filter := domain.GarageAppointmentsFilter{
		GarageID: r.GarageID,
		Page:     domain.Page{Limit: r.Limit, Offset: r.Offset}.Normalize(),
	}

	if r.Date == nil {
		return filter
	}

	from, to := domain.DateOnly(*r.Date), domain.DateOnly(*r.Date)
	if r.Week {
		from, to = domain.WeekStart(from), domain.WeekEnd(from)
	}
	filter.From, filter.To = &from, &to

	return filter
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID            uuid.UUID `json:"id"`
	GarageID      uuid.UUID `json:"garageId"`
	VehicleID     uuid.UUID `json:"vehicleId"`
	EmployeeID    uuid.UUID `json:"employeeId"`
	Area          string    `json:"area"`
	SelectedDate  string    `json:"selectedDate"` // "2024-06-10"
	Details       string    `json:"details,omitempty"`
	Status        string    `json:"status"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:            a.ID,
		GarageID:      a.GarageID,
		VehicleID:     a.VehicleID,
		EmployeeID:    a.EmployeeID,
		Area:          string(a.Area),
		SelectedDate:  a.SelectedDate.Format(domain.DateFormat),
		Details:       a.Details,
		Status:        string(a.Status),
		CustomerEmail: a.CustomerEmail,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, page domain.Page) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
		Limit:        page.Limit,
		Offset:       page.Offset,
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}
