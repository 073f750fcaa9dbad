package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// 2024-06-10 - понедельник
var monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func testGarage() *domain.Garage {
	return &domain.Garage{
		Name: "Fast Fix",
		Schedule: []domain.ScheduleEntry{
			{DayOfWeek: 0, OpeningTime: "08:00", ClosingTime: "18:00"},
			{DayOfWeek: 1, OpeningTime: "09:00", ClosingTime: "17:00"},
			{DayOfWeek: 6, IsClosed: true},
		},
	}
}

func TestCalendar_IsOpen(t *testing.T) {
	c := New()
	g := testGarage()

	tests := []struct {
		name     string
		date     time.Time
		wantOpen bool
		wantDay  int
	}{
		{name: "monday open", date: monday, wantOpen: true, wantDay: 0},
		{name: "tuesday open", date: monday.AddDate(0, 0, 1), wantOpen: true, wantDay: 1},
		{name: "wednesday has no entry", date: monday.AddDate(0, 0, 2)},
		{name: "sunday closed", date: monday.AddDate(0, 0, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, entry := c.IsOpen(g, tt.date)
			assert.Equal(t, tt.wantOpen, open)
			if !tt.wantOpen {
				assert.Nil(t, entry)
				return
			}
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantDay, entry.DayOfWeek)
		})
	}
}

func TestCalendar_IsOpen_NilGarage(t *testing.T) {
	open, entry := New().IsOpen(nil, monday)
	assert.False(t, open)
	assert.Nil(t, entry)
}

func TestCalendar_IsOpenAt(t *testing.T) {
	c := New()
	g := testGarage()

	assert.True(t, c.IsOpenAt(g, monday.Add(8*time.Hour)), "opening boundary is inclusive")
	assert.True(t, c.IsOpenAt(g, monday.Add(12*time.Hour+30*time.Minute)))
	assert.True(t, c.IsOpenAt(g, monday.Add(18*time.Hour)), "closing boundary is inclusive")
	assert.False(t, c.IsOpenAt(g, monday.Add(18*time.Hour+time.Minute)))
	assert.False(t, c.IsOpenAt(g, monday.Add(7*time.Hour+59*time.Minute)))
	assert.False(t, c.IsOpenAt(g, monday.AddDate(0, 0, 6).Add(12*time.Hour)))
}
