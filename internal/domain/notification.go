package domain

import "github.com/google/uuid"

// EventType identifies a notification kind
type EventType string

const (
	EventAppointmentAssigned      EventType = "AppointmentAssigned"
	EventAppointmentStatusChanged EventType = "AppointmentStatusChanged"
	EventNoEmployeeAvailable      EventType = "NoEmployeeAvailable"
)

// Payload keys
const (
	PayloadDate       = "date"
	PayloadGarageName = "garage_name"
	PayloadStatus     = "status"
)

// Notification is a message for one recipient about one appointment
type Notification struct {
	ID            uuid.UUID
	Event         EventType
	Recipient     string // email
	AppointmentID uuid.UUID
	Payload       map[string]string
}
