package defence_session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/psqlbuilder"
)

const tableName = "defence_sessions"

var columns = []string{
	"id",
	"description",
	"date",
	"start_time",
	"end_time",
	"task_category_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий сессий защиты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий защиты
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает сессию защиты
func (r *Repository) Create(ctx context.Context, session *domain.DefenceSession) (*domain.DefenceSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"description",
			"date",
			"start_time",
			"end_time",
			"task_category_id",
		).
		Values(
			session.Description,
			session.Date.Format(domain.DateFormat),
			session.StartTime,
			session.EndTime,
			session.TaskCategoryID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return session, nil
}

// GetByID получает сессию защиты по ID.
// Внутри транзакции строка блокируется (FOR UPDATE): генерация слотов по одной сессии
// выполняется строго последовательно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DefenceSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	session, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDefenceSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan defence session: %w", ErrScanRow, err)
	}

	return session, nil
}

// GetAll возвращает все сессии защиты, упорядоченные по дате и времени начала
func (r *Repository) GetAll(ctx context.Context) ([]*domain.DefenceSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetByDate возвращает сессии защиты на указанную дату (для проверки пересечений)
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.DefenceSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// Update обновляет изменяемые поля сессии защиты
func (r *Repository) Update(ctx context.Context, session *domain.DefenceSession) (*domain.DefenceSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("description", session.Description).
		Set("date", session.Date.Format(domain.DateFormat)).
		Set("start_time", session.StartTime).
		Set("end_time", session.EndTime).
		Set("task_category_id", session.TaskCategoryID).
		Set("updated_at", psqlbuilder.Now()).
		Where(squirrel.Eq{"id": session.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&session.CreatedAt, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDefenceSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return session, nil
}

// Delete удаляет сессию защиты. Слоты должны быть удалены заранее.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDefenceSessionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.DefenceSession, error) {
	var session domain.DefenceSession
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&session.ID,
		&session.Description,
		&session.Date,
		&session.StartTime,
		&session.EndTime,
		&session.TaskCategoryID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	session.CreatedAt = createdAt.Time
	session.UpdatedAt = updatedAt.Time

	return &session, nil
}

// scanSessions сканирует результаты запроса в слайс сессий
func scanSessions(rows *sql.Rows) ([]*domain.DefenceSession, error) {
	sessions := make([]*domain.DefenceSession, 0)

	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSessions - scan row: %w", ErrScanRow, err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSessions - rows error: %w", ErrScanRow, err)
	}

	return sessions, nil
}
