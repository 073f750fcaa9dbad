package calendar

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Calendar проверяет расписание гаража
// Чистая логика без обращений к БД
type Calendar struct{}

// New создает календарь
func New() *Calendar {
	return &Calendar{}
}

// IsOpen проверяет, работает ли гараж в день недели указанной даты
// Отсутствие записи в расписании означает выходной
func (c *Calendar) IsOpen(garage *domain.Garage, date time.Time) (bool, *domain.ScheduleEntry) {
	if garage == nil {
		return false, nil
	}

	entry, ok := garage.EntryFor(date)
	if !ok || entry.IsClosed {
		return false, nil
	}

	return true, entry
}

// IsOpenAt проверяет, открыт ли гараж в момент t
// Границы включительно: opening <= t <= closing
func (c *Calendar) IsOpenAt(garage *domain.Garage, t time.Time) bool {
	open, entry := c.IsOpen(garage, t)
	if !open {
		return false
	}

	now, err := types.FromTime(t).Minutes()
	if err != nil {
		return false
	}
	opening, err := entry.OpeningTime.Minutes()
	if err != nil {
		return false
	}
	closing, err := entry.ClosingTime.Minutes()
	if err != nil {
		return false
	}

	return opening <= now && now <= closing
}
