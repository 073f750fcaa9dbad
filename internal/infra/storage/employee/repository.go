package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Сотрудники хранятся в общей таблице пользователей
const tableName = "users"

var columns = []string{
	"id",
	"garage_id",
	"email",
	"first_name",
	"last_name",
	"role",
}

// Repository репозиторий сотрудников гаражей (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByGarageAndRole получает сотрудников гаража с заданной ролью, упорядоченных по ID
func (r *Repository) GetByGarageAndRole(ctx context.Context, garageID uuid.UUID, role domain.Role) ([]*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"garage_id": garageID.String()}).
		Where(squirrel.Eq{"role": string(role)}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByGarageAndRole - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByGarageAndRole - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByGarageAndRole - scan row: %w", ErrScanRow, err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByGarageAndRole - rows error: %w", ErrScanRow, err)
	}

	return employees, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Employee, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id.String()})
}

// GetByEmail получает пользователя по email (без учёта регистра)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

func (r *Repository) getOne(ctx context.Context, op string, pred squirrel.Sqlizer) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(pred).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	employee, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan employee: %w", ErrScanRow, op, err)
	}

	return employee, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row scanner) (*domain.Employee, error) {
	var employee domain.Employee
	var garageID uuid.NullUUID
	var firstName, lastName sql.NullString

	err := row.Scan(
		&employee.ID,
		&garageID,
		&employee.Email,
		&firstName,
		&lastName,
		&employee.Role,
	)
	if err != nil {
		return nil, err
	}

	// У клиентов и администраторов гаража нет
	if garageID.Valid {
		employee.GarageID = garageID.UUID
	}
	employee.FirstName = firstName.String
	employee.LastName = lastName.String

	return &employee, nil
}
