package booking_slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

const tableName = "booking_slots"

var columns = []string{
	"id",
	"defence_session_id",
	"start_time",
	"end_time",
	"is_booked",
	"user_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий слотов бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch сохраняет все слоты одним INSERT и возвращает их упорядоченными по времени начала.
// Порядок строк RETURNING не гарантирован, поэтому ID сопоставляются по start_time
// (уникален в пределах сессии).
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.BookingSlot) ([]*domain.BookingSlot, error) {
	if len(slots) == 0 {
		return []*domain.BookingSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(tableName).
		Columns(
			"defence_session_id",
			"start_time",
			"end_time",
			"is_booked",
			"user_id",
		)

	byStart := make(map[types.TimeOfDay]*domain.BookingSlot, len(slots))
	for _, slot := range slots {
		// TIME хранит микросекунды, более точные границы вернутся из RETURNING округленными
		if slot.StartTime.Offset()%domain.MinSlotResolution != 0 || slot.EndTime.Offset()%domain.MinSlotResolution != 0 {
			return nil, fmt.Errorf("%w: CreateBatch - slot %s-%s is finer than %s",
				ErrBuildQuery, slot.StartTime, slot.EndTime, domain.MinSlotResolution)
		}
		insertBuilder = insertBuilder.Values(
			slot.DefenceSessionID,
			slot.StartTime,
			slot.EndTime,
			slot.IsBooked,
			slot.UserID,
		)
		byStart[slot.StartTime] = slot
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, start_time, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	created := make([]*domain.BookingSlot, 0, len(slots))
	for rows.Next() {
		var (
			id                   int64
			startTime            types.TimeOfDay
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&id, &startTime, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan row: %w", ErrScanRow, err)
		}

		slot, ok := byStart[startTime]
		if !ok {
			return nil, fmt.Errorf("%w: CreateBatch - unexpected start_time %s", ErrScanRow, startTime)
		}
		slot.ID = id
		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time
		created = append(created, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows error: %w", ErrScanRow, err)
	}

	if len(created) != len(slots) {
		return nil, fmt.Errorf("%w: CreateBatch - inserted %d of %d rows", ErrExecQuery, len(created), len(slots))
	}

	sort.Slice(created, func(i, j int) bool {
		return created[i].StartTime.Before(created[j].StartTime)
	})

	return created, nil
}

// GetByID получает слот по ID. Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingSlot, error) {
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

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking slot: %w", ErrScanRow, err)
	}

	return slot, nil
}

// GetByDefenceSessionID возвращает слоты сессии в порядке времени начала
func (r *Repository) GetByDefenceSessionID(ctx context.Context, defenceSessionID int64) ([]*domain.BookingSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"defence_session_id": defenceSessionID}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDefenceSessionID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDefenceSessionID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BookingSlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDefenceSessionID - scan row: %w", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDefenceSessionID - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// ExistsByDefenceSessionID проверяет, есть ли у сессии хотя бы один слот
func (r *Repository) ExistsByDefenceSessionID(ctx context.Context, defenceSessionID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Exists(
		psqlbuilder.Select("1").
			From(tableName).
			Where(squirrel.Eq{"defence_session_id": defenceSessionID}),
	).ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByDefenceSessionID - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: ExistsByDefenceSessionID - scan: %w", ErrScanRow, err)
	}

	return exists, nil
}

// DeleteByDefenceSessionID удаляет все слоты сессии одним запросом и возвращает их количество
func (r *Repository) DeleteByDefenceSessionID(ctx context.Context, defenceSessionID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"defence_session_id": defenceSessionID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDefenceSessionID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDefenceSessionID - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByDefenceSessionID - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Assign сохраняет выбор слота пользователем.
// Обновление условное (is_booked = false): если слот успели занять, возвращается ErrSlotAlreadyBooked.
func (r *Repository) Assign(ctx context.Context, slot *domain.BookingSlot) error {
	if slot.UserID == nil {
		return fmt.Errorf("%w: Assign - slot id=%d has no user", ErrBuildQuery, slot.ID)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("user_id", *slot.UserID).
		Set("is_booked", true).
		Set("updated_at", psqlbuilder.Now()).
		Where(squirrel.Eq{"id": slot.ID, "is_booked": false}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Assign - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id=%d", ErrSlotAlreadyBooked, slot.ID)
	}
	if err != nil {
		return fmt.Errorf("%w: Assign - execute update: %w", ErrExecQuery, err)
	}

	slot.IsBooked = true
	slot.UpdatedAt = updatedAt.Time

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.BookingSlot, error) {
	var slot domain.BookingSlot
	var userID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.DefenceSessionID,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsBooked,
		&userID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		id := userID.Int64
		slot.UserID = &id
	}
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}
