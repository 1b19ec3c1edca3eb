package task_category_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/task_category"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM task_categories WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "Базы данных"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM task_categories WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	category, err := r.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Базы данных", category.Name)

	_, err = r.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, repo.ErrTaskCategoryNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewRepository(db)
	query := regexp.QuoteMeta(`SELECT EXISTS( SELECT 1 FROM task_categories WHERE id = $1 )`)

	mock.ExpectQuery(query).WithArgs(int64(2)).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(query).WithArgs(int64(3)).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(query).WithArgs(int64(4)).WillReturnError(errors.New("connection reset"))

	exists, err := r.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.Exists(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = r.Exists(context.Background(), 4)
	assert.ErrorIs(t, err, repo.ErrExecQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}
