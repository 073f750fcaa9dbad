package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnknownStatus = errors.New("domain: unknown appointment status")

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "PENDING"
	StatusConfirmed  AppointmentStatus = "CONFIRMED"
	StatusInProgress AppointmentStatus = "IN_PROGRESS"
	StatusCompleted  AppointmentStatus = "COMPLETED"
	StatusCancelled  AppointmentStatus = "CANCELLED"
)

// ParseStatus parses a status name case-insensitively
func ParseStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return status, nil
	}
	return "", ErrUnknownStatus
}

// Appointment represents a service appointment assigned to one employee
type Appointment struct {
	ID           uuid.UUID
	GarageID     uuid.UUID
	VehicleID    uuid.UUID
	EmployeeID   uuid.UUID
	Area         Area
	SelectedDate time.Time // date only, UTC midnight
	Details      string
	Status       AppointmentStatus

	// Vehicle owner at booking time
	CustomerEmail string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment was cancelled and could not be reassigned
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsAssignedTo returns true if the employee is the current assignee
func (a *Appointment) IsAssignedTo(employeeID uuid.UUID) bool {
	return a.EmployeeID == employeeID
}

// BelongsToCustomer compares the customer email case-insensitively
func (a *Appointment) BelongsToCustomer(email string) bool {
	return a.CustomerEmail != "" && strings.EqualFold(a.CustomerEmail, email)
}

// Page holds limit/offset pagination
type Page struct {
	Limit  int
	Offset int
}

// Normalize applies default and maximum limit
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// GarageAppointmentsFilter фильтр для получения записей гаража
type GarageAppointmentsFilter struct {
	GarageID uuid.UUID
	From     *time.Time // включительно, nil - без ограничения
	To       *time.Time // включительно, nil - без ограничения
	Page     Page
}
