package employees

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeEmployeeRepo struct {
	employees []*domain.Employee
	err       error
	calls     int
}

func (r *fakeEmployeeRepo) GetByGarageAndRole(_ context.Context, garageID uuid.UUID, role domain.Role) ([]*domain.Employee, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Employee
	for _, e := range r.employees {
		if e.GarageID == garageID && e.Role == role {
			out = append(out, e)
		}
	}
	return out, nil
}

var (
	garageID = uuid.MustParse("aaaaaaaa-0000-4000-8000-000000000000")
	empA     = uuid.MustParse("00000000-0000-4000-8000-00000000000a")
	empB     = uuid.MustParse("00000000-0000-4000-8000-00000000000b")
	empC     = uuid.MustParse("00000000-0000-4000-8000-00000000000c")
)

func staff() []*domain.Employee {
	return []*domain.Employee{
		{ID: empC, GarageID: garageID, Role: domain.RoleMechanicEngine},
		{ID: empA, GarageID: garageID, Role: domain.RoleMechanicEngine},
		{ID: empB, GarageID: garageID, Role: domain.RoleMechanicWheels},
		{ID: uuid.New(), GarageID: uuid.New(), Role: domain.RoleMechanicEngine},
		{ID: uuid.New(), GarageID: garageID, Role: domain.RoleReceptionist},
	}
}

func TestFinder_Find(t *testing.T) {
	f := NewFinder(&fakeEmployeeRepo{employees: staff()}, nopLogger{})

	got, err := f.Find(context.Background(), garageID, domain.AreaEngine)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, empA, got[0].ID)
	assert.Equal(t, empC, got[1].ID)
	for _, e := range got {
		assert.True(t, e.CanServe(garageID, domain.AreaEngine))
	}
}

func TestFinder_Find_NoQualifiedEmployees(t *testing.T) {
	f := NewFinder(&fakeEmployeeRepo{employees: staff()}, nopLogger{})

	got, err := f.Find(context.Background(), garageID, domain.AreaPaint)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFinder_FindExcluding(t *testing.T) {
	f := NewFinder(&fakeEmployeeRepo{employees: staff()}, nopLogger{})

	got, err := f.FindExcluding(context.Background(), garageID, domain.AreaEngine, empA)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, empC, got[0].ID)
}

func TestFinder_InvalidAreaFailsBeforeQuery(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: staff()}
	f := NewFinder(repo, nopLogger{})

	_, err := f.Find(context.Background(), garageID, domain.Area("PLUMBING"))

	assert.ErrorIs(t, err, ErrInvalidArea)
	assert.Zero(t, repo.calls)
}

func TestFinder_RepositoryError(t *testing.T) {
	f := NewFinder(&fakeEmployeeRepo{err: errors.New("db down")}, nopLogger{})

	_, err := f.Find(context.Background(), garageID, domain.AreaEngine)

	assert.ErrorIs(t, err, ErrInternal)
}
