package update_appointment_status

import (
	"time"

	"github.com/google/uuid"
)

// Outcome результат смены статуса
type Outcome string

const (
	// OutcomeUpdated статус перезаписан
	OutcomeUpdated Outcome = "updated"
	// OutcomeReassigned запись передана другому сотруднику и вернулась в PENDING
	OutcomeReassigned Outcome = "reassigned"
	// OutcomeReassignmentExhausted других сотрудников нет, запись отменена
	OutcomeReassignmentExhausted Outcome = "reassignment_exhausted"
)

// Request модель запроса на смену статуса
type Request struct {
	AppointmentID       uuid.UUID
	Status              string
	ActingEmployeeEmail string
}

// Response модель ответа с (возможно переназначенной) записью
type Response struct {
	ID            uuid.UUID
	GarageID      uuid.UUID
	VehicleID     uuid.UUID
	EmployeeID    uuid.UUID
	Area          string
	SelectedDate  time.Time
	Details       string
	Status        string
	CustomerEmail string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Outcome Outcome
}
