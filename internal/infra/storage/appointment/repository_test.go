package appointment

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func appointmentRow(a *domain.Appointment) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		a.ID.String(),
		a.GarageID.String(),
		a.VehicleID.String(),
		a.EmployeeID.String(),
		string(a.Area),
		a.SelectedDate,
		a.Details,
		string(a.Status),
		a.CustomerEmail,
		a.CreatedAt,
		a.UpdatedAt,
	)
}

func sampleAppointment() *domain.Appointment {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:            uuid.New(),
		GarageID:      uuid.New(),
		VehicleID:     uuid.New(),
		EmployeeID:    uuid.New(),
		Area:          domain.AreaEngine,
		SelectedDate:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Details:       "strange noise",
		Status:        domain.StatusPending,
		CustomerEmail: "client@example.com",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	a := sampleAppointment()
	a.ID = uuid.Nil
	createdAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (id,garage_id,vehicle_id,employee_id,area,selected_date,details,status,customer_email) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING created_at, updated_at")).
		WithArgs(sqlmock.AnyArg(), a.GarageID.String(), a.VehicleID.String(), a.EmployeeID.String(),
			"ENGINE", a.SelectedDate, a.Details, "PENDING", a.CustomerEmail).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, createdAt))

	created, err := repo.Create(context.Background(), a)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	a := sampleAppointment()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, garage_id, vehicle_id, employee_id, area, selected_date, details, status, customer_email, created_at, updated_at FROM appointments WHERE id = $1")).
		WithArgs(a.ID.String()).
		WillReturnRows(appointmentRow(a))

	got, err := repo.GetByID(context.Background(), a.ID)

	require.NoError(t, err)
	assert.Equal(t, a, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LocksRowInTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	a := sampleAppointment()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1 FOR UPDATE")).
		WithArgs(a.ID.String()).
		WillReturnRows(appointmentRow(a))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.GetByID(dbmetrics.WithTx(context.Background(), tx), a.ID)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("FROM appointments").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, _, mock := newRepo(t)
	a := sampleAppointment()
	a.Status = domain.StatusConfirmed
	updatedAt := time.Date(2024, 6, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE appointments SET employee_id = $1, status = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at")).
		WithArgs(a.EmployeeID.String(), "CONFIRMED", a.ID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	require.NoError(t, repo.Update(context.Background(), a))
	assert.Equal(t, updatedAt, a.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("UPDATE appointments").WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	err := repo.Update(context.Background(), sampleAppointment())

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRepository_CountByEmployeesAndPeriod(t *testing.T) {
	repo, _, mock := newRepo(t)
	a, b := uuid.New(), uuid.New()
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT employee_id, COUNT(*) FROM appointments WHERE employee_id IN ($1,$2) AND selected_date >= $3 AND selected_date <= $4 AND status IN ($5,$6,$7,$8) GROUP BY employee_id")).
		WithArgs(a.String(), b.String(), from, to, "PENDING", "CONFIRMED", "IN_PROGRESS", "COMPLETED").
		WillReturnRows(sqlmock.NewRows([]string{"employee_id", "count"}).AddRow(a.String(), 3))

	counts, err := repo.CountByEmployeesAndPeriod(context.Background(), []uuid.UUID{a, b}, from, to)

	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]int{a: 3, b: 0}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountByEmployeesAndPeriod_Empty(t *testing.T) {
	repo, _, mock := newRepo(t)

	counts, err := repo.CountByEmployeesAndPeriod(context.Background(), nil, time.Now(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByGarage_SingleDate(t *testing.T) {
	repo, _, mock := newRepo(t)
	a := sampleAppointment()
	date := a.SelectedDate

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE garage_id = $1 AND selected_date >= $2 AND selected_date <= $3 ORDER BY created_at ASC LIMIT 20 OFFSET 0")).
		WithArgs(a.GarageID.String(), date, date).
		WillReturnRows(appointmentRow(a))

	list, err := repo.ListByGarage(context.Background(), domain.GarageAppointmentsFilter{
		GarageID: a.GarageID,
		From:     &date,
		To:       &date,
	})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByCustomer(t *testing.T) {
	repo, _, mock := newRepo(t)
	a := sampleAppointment()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(customer_email) = LOWER($1) ORDER BY selected_date DESC, created_at DESC LIMIT 100 OFFSET 5")).
		WithArgs("Client@Example.com").
		WillReturnRows(appointmentRow(a))

	list, err := repo.ListByCustomer(context.Background(), "Client@Example.com", domain.Page{Limit: 500, Offset: 5})

	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByEmployee(t *testing.T) {
	repo, _, mock := newRepo(t)
	a := sampleAppointment()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE employee_id = $1 ORDER BY selected_date DESC, created_at DESC LIMIT 10 OFFSET 0")).
		WithArgs(a.EmployeeID.String()).
		WillReturnRows(appointmentRow(a))

	list, err := repo.ListByEmployee(context.Background(), a.EmployeeID, domain.Page{Limit: 10})

	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}
