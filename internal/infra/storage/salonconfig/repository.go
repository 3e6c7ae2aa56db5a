package salonconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

// Repository репозиторий для работы с конфигурацией салона.
// Конфигурация - синглтон: таблица содержит не более одной строки,
// уникальный индекс по колонке singleton не даёт создать вторую.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает конфигурацию салона.
// Возвращает ErrConfigAlreadyExists, если конфигурация уже существует.
func (r *Repository) Create(ctx context.Context, cfg *domain.SalonConfig) (*domain.SalonConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_config").
		Columns(
			"morning_opens",
			"morning_closes",
			"evening_opens",
			"evening_closes",
			"days_off",
		).
		Values(
			cfg.Morning.Opens,
			cfg.Morning.Closes,
			cfg.Evening.Opens,
			cfg.Evening.Closes,
			pq.Array(cfg.DaysOff),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrConfigAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// Get получает конфигурацию салона.
// Возвращает ErrConfigNotFound, если конфигурация ещё не создана.
func (r *Repository) Get(ctx context.Context) (*domain.SalonConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"morning_opens",
		"morning_closes",
		"evening_opens",
		"evening_closes",
		"days_off",
		"created_at",
		"updated_at",
	).
		From("salon_config").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.SalonConfig
	var daysOff pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.Morning.Opens,
		&cfg.Morning.Closes,
		&cfg.Evening.Opens,
		&cfg.Evening.Closes,
		&daysOff,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	cfg.DaysOff = daysOff
	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// Update обновляет конфигурацию салона
func (r *Repository) Update(ctx context.Context, cfg *domain.SalonConfig) (*domain.SalonConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salon_config").
		Set("morning_opens", cfg.Morning.Opens).
		Set("morning_closes", cfg.Morning.Closes).
		Set("evening_opens", cfg.Evening.Opens).
		Set("evening_closes", cfg.Evening.Closes).
		Set("days_off", pq.Array(cfg.DaysOff)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": cfg.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}
