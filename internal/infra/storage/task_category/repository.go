package task_category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/psqlbuilder"
)

// Repository репозиторий категорий задач (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория категорий задач
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает категорию задач по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TaskCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("task_categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var category domain.TaskCategory
	err = executor.QueryRowContext(ctx, query, args...).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan task category: %w", ErrScanRow, err)
	}

	return &category, nil
}

// Exists проверяет существование категории задач
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Exists(
		psqlbuilder.Select("1").
			From("task_categories").
			Where(squirrel.Eq{"id": id}),
	).ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - execute query: %w", ErrExecQuery, err)
	}

	return exists, nil
}
