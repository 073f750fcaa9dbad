package domain

// Business validation constants
const (
	MaxDetailsLength = 250
)

// Pagination
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, которые учитываются при подсчёте загрузки сотрудника
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
