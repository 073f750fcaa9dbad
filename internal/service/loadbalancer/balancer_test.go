package loadbalancer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeCounter хранит даты записей каждого сотрудника
type fakeCounter struct {
	appointments map[uuid.UUID][]time.Time
	err          error
	calls        int
}

func (c *fakeCounter) CountByEmployeesAndPeriod(_ context.Context, ids []uuid.UUID, from, to time.Time) (map[uuid.UUID]int, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	counts := make(map[uuid.UUID]int, len(ids))
	for _, id := range ids {
		for _, d := range c.appointments[id] {
			if !d.Before(from) && !d.After(to) {
				counts[id]++
			}
		}
	}
	return counts, nil
}

var (
	monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	idA    = uuid.MustParse("00000000-0000-4000-8000-00000000000a")
	idB    = uuid.MustParse("00000000-0000-4000-8000-00000000000b")
	idC    = uuid.MustParse("00000000-0000-4000-8000-00000000000c")
)

func employees(ids ...uuid.UUID) []*domain.Employee {
	out := make([]*domain.Employee, len(ids))
	for i, id := range ids {
		out[i] = &domain.Employee{ID: id, Role: domain.RoleMechanicEngine}
	}
	return out
}

func repeat(d time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestBalancer_Select_UniqueDailyMinimum(t *testing.T) {
	// A занят 2 раза на дату, B свободен - выбираем B
	counter := &fakeCounter{appointments: map[uuid.UUID][]time.Time{
		idA: repeat(monday, 2),
	}}
	b := NewBalancer(counter, nopLogger{})

	got, err := b.Select(context.Background(), employees(idA, idB), monday)

	require.NoError(t, err)
	assert.Equal(t, idB, got.ID)
	assert.Equal(t, 1, counter.calls, "weekly counts are not needed")
}

func TestBalancer_Select_DailyWinsRegardlessOfWeekly(t *testing.T) {
	// у B меньше на дату, хотя за неделю у него больше
	counter := &fakeCounter{appointments: map[uuid.UUID][]time.Time{
		idA: {monday},
		idB: repeat(monday.AddDate(0, 0, 2), 5),
	}}
	b := NewBalancer(counter, nopLogger{})

	got, err := b.Select(context.Background(), employees(idA, idB), monday)

	require.NoError(t, err)
	assert.Equal(t, idB, got.ID)
}

func TestBalancer_Select_WeeklyBreaksDailyTie(t *testing.T) {
	// по одной записи на дату у каждого, за неделю у A 3, у B 1
	wednesday := monday.AddDate(0, 0, 2)
	counter := &fakeCounter{appointments: map[uuid.UUID][]time.Time{
		idA: append([]time.Time{wednesday}, repeat(monday.AddDate(0, 0, 3), 2)...),
		idB: {wednesday},
	}}
	b := NewBalancer(counter, nopLogger{})

	got, err := b.Select(context.Background(), employees(idA, idB), wednesday)

	require.NoError(t, err)
	assert.Equal(t, idB, got.ID)
	assert.Equal(t, 2, counter.calls)
}

func TestBalancer_Select_WeekBoundaries(t *testing.T) {
	// записи вне недели (прошлое воскресенье, следующий понедельник) не учитываются
	counter := &fakeCounter{appointments: map[uuid.UUID][]time.Time{
		idA: {monday.AddDate(0, 0, -1), monday.AddDate(0, 0, 7)},
		idB: {monday.AddDate(0, 0, 6)},
	}}
	b := NewBalancer(counter, nopLogger{})

	got, err := b.Select(context.Background(), employees(idB, idA), monday.AddDate(0, 0, 3))

	require.NoError(t, err)
	assert.Equal(t, idA, got.ID)
}

func TestBalancer_Select_FullTiePicksLowestID(t *testing.T) {
	b := NewBalancer(&fakeCounter{}, nopLogger{})

	for i := 0; i < 5; i++ {
		got, err := b.Select(context.Background(), employees(idC, idA, idB), monday)
		require.NoError(t, err)
		assert.Equal(t, idA, got.ID)
	}
}

func TestBalancer_Select_SingleCandidate(t *testing.T) {
	b := NewBalancer(&fakeCounter{appointments: map[uuid.UUID][]time.Time{idC: repeat(monday, 10)}}, nopLogger{})

	got, err := b.Select(context.Background(), employees(idC), monday)

	require.NoError(t, err)
	assert.Equal(t, idC, got.ID)
}

func TestBalancer_Select_NoCandidates(t *testing.T) {
	b := NewBalancer(&fakeCounter{}, nopLogger{})

	_, err := b.Select(context.Background(), nil, monday)

	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestBalancer_Select_CounterError(t *testing.T) {
	b := NewBalancer(&fakeCounter{err: errors.New("db down")}, nopLogger{})

	_, err := b.Select(context.Background(), employees(idA, idB), monday)

	assert.ErrorIs(t, err, ErrInternal)
}
