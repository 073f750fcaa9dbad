package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var ErrInvalidSchedule = errors.New("domain: invalid garage schedule")

// GarageStatus is the moderation state of a garage
type GarageStatus string

const (
	GarageStatusPending  GarageStatus = "PENDING"
	GarageStatusApproved GarageStatus = "APPROVED"
	GarageStatusRejected GarageStatus = "REJECTED"
)

// Garage represents a workshop with a weekly schedule
type Garage struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	OwnerEmail string
	Name       string
	Status     GarageStatus
	Schedule   []ScheduleEntry
}

// ScheduleEntry describes opening hours for one weekday
type ScheduleEntry struct {
	DayOfWeek   int // 0 = Monday ... 6 = Sunday
	OpeningTime types.TimeString
	ClosingTime types.TimeString
	IsClosed    bool
}

// DayIndex maps a date to the schedule day index (Monday = 0)
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// EntryFor returns the schedule entry for the weekday of the date, if any
func (g *Garage) EntryFor(date time.Time) (*ScheduleEntry, bool) {
	day := DayIndex(date)
	for i := range g.Schedule {
		if g.Schedule[i].DayOfWeek == day {
			return &g.Schedule[i], true
		}
	}
	return nil, false
}

// IsOwnedBy compares the owner email case-insensitively
func (g *Garage) IsOwnedBy(email string) bool {
	return g.OwnerEmail != "" && equalFold(g.OwnerEmail, email)
}

// ValidateSchedule checks day indices are 0..6 and unique, and open days have opening < closing
func ValidateSchedule(entries []ScheduleEntry) error {
	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return fmt.Errorf("%w: day index %d out of range", ErrInvalidSchedule, e.DayOfWeek)
		}
		if _, dup := seen[e.DayOfWeek]; dup {
			return fmt.Errorf("%w: duplicate day index %d", ErrInvalidSchedule, e.DayOfWeek)
		}
		seen[e.DayOfWeek] = struct{}{}

		if e.IsClosed {
			continue
		}
		if err := e.OpeningTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d opening time: %v", ErrInvalidSchedule, e.DayOfWeek, err)
		}
		if err := e.ClosingTime.Validate(); err != nil {
			return fmt.Errorf("%w: day %d closing time: %v", ErrInvalidSchedule, e.DayOfWeek, err)
		}
		if !e.OpeningTime.IsBefore(e.ClosingTime) {
			return fmt.Errorf("%w: day %d opens at %s after closing at %s",
				ErrInvalidSchedule, e.DayOfWeek, e.OpeningTime, e.ClosingTime)
		}
	}
	return nil
}
