package garages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	garageRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/garage"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeGarageRepo struct {
	garage *domain.Garage
	err    error
}

func (r *fakeGarageRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Garage, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.garage == nil || r.garage.ID != id {
		return nil, garageRepo.ErrGarageNotFound
	}
	return r.garage, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newService(repo GarageRepository, now time.Time) *Service {
	s := NewService(repo, calendar.New(), nopLogger{})
	s.timeProvider = fixedTime{t: now}
	return s
}

func testGarage() *domain.Garage {
	return &domain.Garage{
		ID:   uuid.New(),
		Name: "Fast Fix",
		Schedule: []domain.ScheduleEntry{
			{DayOfWeek: 0, OpeningTime: "08:00", ClosingTime: "18:00"},
			{DayOfWeek: 6, IsClosed: true},
		},
	}
}

func TestService_GetSchedule(t *testing.T) {
	g := testGarage()
	mondayNoon := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)

	resp, err := newService(&fakeGarageRepo{garage: g}, mondayNoon).GetSchedule(context.Background(), g.ID, &sunday)

	require.NoError(t, err)
	assert.True(t, resp.OpenNow)
	require.NotNil(t, resp.OpenOn)
	assert.False(t, *resp.OpenOn)
	require.Len(t, resp.Days, 7)
	assert.Equal(t, "MONDAY", resp.Days[0].Day)
	assert.Equal(t, "08:00", resp.Days[0].OpeningTime)
	assert.False(t, resp.Days[0].IsClosed)
	assert.True(t, resp.Days[2].IsClosed, "missing day is reported closed")
	assert.True(t, resp.Days[6].IsClosed)
}

func TestService_GetSchedule_ClosedNow(t *testing.T) {
	g := testGarage()
	mondayEvening := time.Date(2024, 6, 10, 19, 0, 0, 0, time.UTC)

	resp, err := newService(&fakeGarageRepo{garage: g}, mondayEvening).GetSchedule(context.Background(), g.ID, nil)

	require.NoError(t, err)
	assert.False(t, resp.OpenNow)
	assert.Nil(t, resp.OpenOn)
}

func TestService_GetSchedule_Errors(t *testing.T) {
	_, err := newService(&fakeGarageRepo{}, time.Now()).GetSchedule(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrGarageNotFound)

	_, err = newService(&fakeGarageRepo{err: errors.New("db down")}, time.Now()).GetSchedule(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
