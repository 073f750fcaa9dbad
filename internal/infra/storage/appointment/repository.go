package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

const tableName = "appointments"

var columns = []string{
	"id",
	"garage_id",
	"vehicle_id",
	"employee_id",
	"area",
	"selected_date",
	"details",
	"status",
	"customer_email",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на обслуживание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись
// ID генерируется на стороне сервиса, если не задан
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"garage_id",
			"vehicle_id",
			"employee_id",
			"area",
			"selected_date",
			"details",
			"status",
			"customer_email",
		).
		Values(
			appointment.ID,
			appointment.GarageID,
			appointment.VehicleID,
			appointment.EmployeeID,
			appointment.Area,
			appointment.SelectedDate,
			appointment.Details,
			appointment.Status,
			appointment.CustomerEmail,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return appointment, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id.String()})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}

	return appointment, nil
}

// Update сохраняет назначенного сотрудника и статус
func (r *Repository) Update(ctx context.Context, appointment *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("employee_id", appointment.EmployeeID).
		Set("status", appointment.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appointment.ID.String()}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAppointmentNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	appointment.UpdatedAt = updatedAt.Time
	return nil
}

// CountByEmployeesAndPeriod считает записи в статусах domain.ActiveStatuses каждого сотрудника
// в диапазоне дат [from, to] включительно
// Сотрудники без записей присутствуют в результате с нулём
func (r *Repository) CountByEmployeesAndPeriod(ctx context.Context, employeeIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(employeeIDs))
	if len(employeeIDs) == 0 {
		return counts, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]string, len(employeeIDs))
	for i, id := range employeeIDs {
		ids[i] = id.String()
		counts[id] = 0
	}

	statuses := make([]string, len(domain.ActiveStatuses))
	for i, status := range domain.ActiveStatuses {
		statuses[i] = string(status)
	}

	query, args, err := psqlbuilder.Select("employee_id", "COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"employee_id": ids}).
		Where(squirrel.GtOrEq{"selected_date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"selected_date": domain.DateOnly(to)}).
		Where(squirrel.Eq{"status": statuses}).
		GroupBy("employee_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByEmployeesAndPeriod - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByEmployeesAndPeriod - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var employeeID uuid.UUID
		var count int
		if err := rows.Scan(&employeeID, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByEmployeesAndPeriod - scan row: %w", ErrScanRow, err)
		}
		counts[employeeID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByEmployeesAndPeriod - rows error: %w", ErrScanRow, err)
	}

	return counts, nil
}

// ListByEmployee получает записи сотрудника, сначала новые
func (r *Repository) ListByEmployee(ctx context.Context, employeeID uuid.UUID, page domain.Page) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListByEmployee",
		psqlbuilder.Select(columns...).
			From(tableName).
			Where(squirrel.Eq{"employee_id": employeeID.String()}).
			OrderBy("selected_date DESC", "created_at DESC"),
		page,
	)
}

// ListByCustomer получает записи клиента по email (без учёта регистра)
func (r *Repository) ListByCustomer(ctx context.Context, email string, page domain.Page) ([]*domain.Appointment, error) {
	return r.list(ctx, "ListByCustomer",
		psqlbuilder.Select(columns...).
			From(tableName).
			Where(squirrel.Expr("LOWER(customer_email) = LOWER(?)", email)).
			OrderBy("selected_date DESC", "created_at DESC"),
		page,
	)
}

// ListByGarage получает записи гаража за период
func (r *Repository) ListByGarage(ctx context.Context, filter domain.GarageAppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"garage_id": filter.GarageID.String()})

	// Фильтрация по периоду
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"selected_date": domain.DateOnly(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"selected_date": domain.DateOnly(*filter.To)})
	}

	// Для конкретной даты - в порядке создания, для периода - сначала новые
	if filter.From != nil && filter.To != nil && filter.From.Equal(*filter.To) {
		selectBuilder = selectBuilder.OrderBy("created_at ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("selected_date DESC", "created_at DESC")
	}

	return r.list(ctx, "ListByGarage", selectBuilder, filter.Page)
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder, page domain.Page) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	page = page.Normalize()
	query, args, err := selectBuilder.
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return appointments, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.GarageID,
		&appointment.VehicleID,
		&appointment.EmployeeID,
		&appointment.Area,
		&appointment.SelectedDate,
		&appointment.Details,
		&appointment.Status,
		&appointment.CustomerEmail,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.SelectedDate = domain.DateOnly(appointment.SelectedDate)
	appointment.CreatedAt = createdAt.Time
	appointment.UpdatedAt = updatedAt.Time

	return &appointment, nil
}
