package defence_session_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	repo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/defence_session"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/types"
)

var sessionColumns = []string{
	"id", "description", "date", "start_time", "end_time", "task_category_id", "created_at", "updated_at",
}

const selectSession = `SELECT id, description, date, start_time, end_time, task_category_id, created_at, updated_at FROM defence_sessions`

func newRepo(t *testing.T) (*repo.Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repo.NewRepository(db), db, mock
}

func TestRepository_Create(t *testing.T) {
	r, _, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO defence_sessions (description,date,start_time,end_time,task_category_id) VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at, updated_at`)).
		WithArgs("Курсовые 3 курс", "2025-06-10", "10:00:00", "12:00:00", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	created, err := r.Create(context.Background(), &domain.DefenceSession{
		Description:    "Курсовые 3 курс",
		Date:           time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:      types.MustTimeOfDay(10, 0, 0, 0),
		EndTime:        types.MustTimeOfDay(12, 0, 0, 0),
		TaskCategoryID: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecErrorKeepsCause(t *testing.T) {
	r, _, mock := newRepo(t)
	cause := errors.New("could not serialize access")

	mock.ExpectQuery(`INSERT INTO defence_sessions`).WillReturnError(cause)

	_, err := r.Create(context.Background(), &domain.DefenceSession{Date: time.Now()})
	assert.ErrorIs(t, err, repo.ErrExecQuery)
	assert.ErrorIs(t, err, cause)
}

func TestRepository_GetByID(t *testing.T) {
	r, _, mock := newRepo(t)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectSession+` WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(int64(5), "desc", date, "13:00:00", "13:30:00", int64(1), date, date))

	session, err := r.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), session.ID)
	assert.Equal(t, types.MustTimeOfDay(13, 0, 0, 0), session.StartTime)
	assert.Equal(t, types.MustTimeOfDay(13, 30, 0, 0), session.EndTime)
	assert.Equal(t, date, session.Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LocksInTransaction(t *testing.T) {
	r, db, mock := newRepo(t)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(selectSession + ` WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(int64(5), "desc", date, "13:00:00", "13:30:00", int64(1), date, date))

	tx, err := db.Begin()
	require.NoError(t, err)

	_, err = r.GetByID(dbmetrics.WithTx(context.Background(), tx), 5)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	r, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectSession + ` WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := r.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, repo.ErrDefenceSessionNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	r, _, mock := newRepo(t)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectSession + ` ORDER BY date ASC, start_time ASC`)).
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow(int64(1), "a", date, "10:00:00", "11:00:00", int64(1), date, date).
			AddRow(int64(2), "b", date, "12:00:00", "13:00:00", int64(1), date, date))

	sessions, err := r.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(2), sessions[1].ID)
}

func TestRepository_GetByDate(t *testing.T) {
	r, _, mock := newRepo(t)
	date := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectSession + ` WHERE date = $1 ORDER BY start_time ASC`)).
		WithArgs("2025-06-10").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	sessions, err := r.GetByDate(context.Background(), date)
	require.NoError(t, err)
	assert.Empty(t, sessions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	r, _, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE defence_sessions SET description = $1, date = $2, start_time = $3, end_time = $4, task_category_id = $5, updated_at = NOW() WHERE id = $6 RETURNING created_at, updated_at`)).
		WithArgs("new", "2025-06-11", "09:00:00", "10:00:00", int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	updated, err := r.Update(context.Background(), &domain.DefenceSession{
		ID:             7,
		Description:    "new",
		Date:           time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		StartTime:      types.MustTimeOfDay(9, 0, 0, 0),
		EndTime:        types.MustTimeOfDay(10, 0, 0, 0),
		TaskCategoryID: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, now, updated.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	r, _, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE defence_sessions`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := r.Update(context.Background(), &domain.DefenceSession{ID: 7, Date: time.Now()})
	assert.ErrorIs(t, err, repo.ErrDefenceSessionNotFound)
}

func TestRepository_Delete(t *testing.T) {
	r, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM defence_sessions WHERE id = $1`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM defence_sessions WHERE id = $1`)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.Delete(context.Background(), 7))
	assert.ErrorIs(t, r.Delete(context.Background(), 8), repo.ErrDefenceSessionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
