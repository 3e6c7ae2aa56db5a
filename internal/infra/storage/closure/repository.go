package closure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// closureColumns полный список колонок таблицы closures
var closureColumns = []string{
	"id",
	"start_date",
	"end_date",
	"is_full_day",
	"start_time",
	"end_time",
	"reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с закрытиями салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория закрытий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое закрытие
func (r *Repository) Create(ctx context.Context, c *domain.Closure) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Для полного дня время окна не записывается
	var startTime, endTime interface{}
	if !c.IsFullDay {
		startTime = c.StartTime
		endTime = c.EndTime
	}

	query, args, err := psqlbuilder.Insert("closures").
		Columns(
			"start_date",
			"end_date",
			"is_full_day",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			dateOnly(c.StartDate),
			dateOnly(c.EndDate),
			c.IsFullDay,
			startTime,
			endTime,
			c.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetAll получает все закрытия, отсортированные по дате начала
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClosures(rows)
}

// GetCovering получает закрытия, диапазон дат которых покрывает указанный день
// (start_date <= day <= end_date)
func (r *Repository) GetCovering(ctx context.Context, day time.Time) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	d := dateOnly(day)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		Where(squirrel.LtOrEq{"start_date": d}).
		Where(squirrel.GtOrEq{"end_date": d}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCovering - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCovering - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClosures(rows)
}

// GetIntersectingRange получает закрытия, диапазон дат которых пересекается
// с [startDate, endDate]. Используется при создании закрытия: пересекающиеся
// закрытия запрещены.
func (r *Repository) GetIntersectingRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		Where(squirrel.LtOrEq{"start_date": dateOnly(endDate)}).
		Where(squirrel.GtOrEq{"end_date": dateOnly(startDate)}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetIntersectingRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetIntersectingRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClosures(rows)
}

// Delete удаляет закрытие
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closures").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

// scanClosures сканирует результаты запроса в слайс закрытий
func (r *Repository) scanClosures(rows *sql.Rows) ([]*domain.Closure, error) {
	closures := make([]*domain.Closure, 0)

	for rows.Next() {
		var c domain.Closure
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.StartDate,
			&c.EndDate,
			&c.IsFullDay,
			&c.StartTime,
			&c.EndTime,
			&c.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanClosures - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		closures = append(closures, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClosures - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}

// dateOnly обнуляет время, чтобы хранить только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
