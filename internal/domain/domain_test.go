package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		input   string
		want    Area
		wantErr bool
	}{
		{input: "ENGINE", want: AreaEngine},
		{input: "engine", want: AreaEngine},
		{input: "MECHANIC_ENGINE", want: AreaEngine},
		{input: " wheels ", want: AreaWheels},
		{input: "ac", want: AreaAC},
		{input: "PLUMBING", wantErr: true},
		{input: "MECHANIC_", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseArea(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownArea)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArea_Role(t *testing.T) {
	assert.Equal(t, RoleMechanicEngine, AreaEngine.Role())
	assert.Equal(t, RoleMechanicAC, AreaAC.Role())

	for _, a := range Areas {
		assert.True(t, a.Role().IsMechanic(), a)
	}
	assert.False(t, RoleReceptionist.IsMechanic())
	assert.False(t, RoleGarageOwner.IsMechanic())
	assert.False(t, Role("MECHANIC_PLUMBING").IsMechanic())
}

func TestEmployee_CanServe(t *testing.T) {
	garageID := uuid.New()
	e := &Employee{ID: uuid.New(), GarageID: garageID, Role: RoleMechanicWheels}

	assert.True(t, e.CanServe(garageID, AreaWheels))
	assert.False(t, e.CanServe(garageID, AreaEngine))
	assert.False(t, e.CanServe(uuid.New(), AreaWheels))
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = ParseStatus("DONE")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestDayIndexAndWeek(t *testing.T) {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, 0, DayIndex(monday))
	assert.Equal(t, 6, DayIndex(sunday))
	assert.Equal(t, 2, DayIndex(wednesday))

	assert.Equal(t, monday, WeekStart(wednesday))
	assert.Equal(t, monday, WeekStart(sunday))
	assert.Equal(t, sunday, WeekEnd(monday))
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), DateOnly(wednesday))

	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, monday, d)
}

func TestGarage_EntryFor(t *testing.T) {
	g := &Garage{Schedule: []ScheduleEntry{
		{DayOfWeek: 0, OpeningTime: "08:00", ClosingTime: "18:00"},
		{DayOfWeek: 6, IsClosed: true},
	}}

	entry, ok := g.EntryFor(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 0, entry.DayOfWeek)

	_, ok = g.EntryFor(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		entries []ScheduleEntry
		wantErr bool
	}{
		{
			name: "valid week",
			entries: []ScheduleEntry{
				{DayOfWeek: 0, OpeningTime: "08:00", ClosingTime: "18:00"},
				{DayOfWeek: 5, OpeningTime: "10:00", ClosingTime: "14:00"},
				{DayOfWeek: 6, IsClosed: true},
			},
		},
		{name: "day out of range", entries: []ScheduleEntry{{DayOfWeek: 7, IsClosed: true}}, wantErr: true},
		{
			name: "duplicate day",
			entries: []ScheduleEntry{
				{DayOfWeek: 1, IsClosed: true},
				{DayOfWeek: 1, OpeningTime: "08:00", ClosingTime: "18:00"},
			},
			wantErr: true,
		},
		{
			name:    "opening after closing",
			entries: []ScheduleEntry{{DayOfWeek: 2, OpeningTime: "18:00", ClosingTime: "08:00"}},
			wantErr: true,
		},
		{
			name:    "malformed time",
			entries: []ScheduleEntry{{DayOfWeek: 2, OpeningTime: "8am", ClosingTime: "18:00"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(tt.entries)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSchedule)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAppointment_Ownership(t *testing.T) {
	employeeID := uuid.New()
	a := &Appointment{EmployeeID: employeeID, CustomerEmail: "Client@Example.com", Status: StatusCancelled}

	assert.True(t, a.IsAssignedTo(employeeID))
	assert.True(t, a.BelongsToCustomer("client@example.com"))
	assert.False(t, a.BelongsToCustomer(""))
	assert.True(t, a.IsCancelled())

	g := &Garage{OwnerEmail: "owner@example.com"}
	assert.True(t, g.IsOwnedBy("OWNER@example.com"))
	assert.False(t, g.IsOwnedBy("other@example.com"))
}

func TestPage_Normalize(t *testing.T) {
	assert.Equal(t, Page{Limit: DefaultPageLimit}, Page{}.Normalize())
	assert.Equal(t, Page{Limit: MaxPageLimit, Offset: 0}, Page{Limit: 1000, Offset: -5}.Normalize())
	assert.Equal(t, Page{Limit: 5, Offset: 10}, Page{Limit: 5, Offset: 10}.Normalize())
}

func TestEmployee_HasEmail(t *testing.T) {
	e := &Employee{Email: "Mech@Garage.test"}

	assert.True(t, e.HasEmail("mech@garage.test"))
	assert.True(t, e.HasEmail(" MECH@GARAGE.TEST "))
	assert.False(t, e.HasEmail("other@garage.test"))
	assert.False(t, (&Employee{}).HasEmail(""))
}
