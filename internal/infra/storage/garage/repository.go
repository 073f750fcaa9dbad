package garage

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

// Repository репозиторий гаражей и их расписаний (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гаражей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает гараж вместе с email владельца и недельным расписанием
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Garage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"g.id",
		"g.owner_id",
		"COALESCE(u.email, '')",
		"g.name",
		"g.status",
	).
		From("garages g").
		LeftJoin("users u ON u.id = g.owner_id").
		Where(squirrel.Eq{"g.id": id.String()}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var garage domain.Garage
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&garage.ID,
		&garage.OwnerID,
		&garage.OwnerEmail,
		&garage.Name,
		&garage.Status,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGarageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan garage: %w", ErrScanRow, err)
	}

	schedule, err := r.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	garage.Schedule = schedule

	return &garage, nil
}

// GetSchedule получает расписание гаража, упорядоченное по дню недели
// Для выходных дней время открытия и закрытия может быть NULL
func (r *Repository) GetSchedule(ctx context.Context, garageID uuid.UUID) ([]domain.ScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"opening_time",
		"closing_time",
		"is_closed",
	).
		From("garage_schedules").
		Where(squirrel.Eq{"garage_id": garageID.String()}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make([]domain.ScheduleEntry, 0, 7)
	for rows.Next() {
		var entry domain.ScheduleEntry
		if err := rows.Scan(&entry.DayOfWeek, &entry.OpeningTime, &entry.ClosingTime, &entry.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: GetSchedule - scan row: %w", ErrScanRow, err)
		}
		schedule = append(schedule, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - rows error: %w", ErrScanRow, err)
	}

	return schedule, nil
}
