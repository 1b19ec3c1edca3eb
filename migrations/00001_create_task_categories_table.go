package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTaskCategoriesTable, downCreateTaskCategoriesTable)
}

func upCreateTaskCategoriesTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE task_categories (
	  id BIGSERIAL PRIMARY KEY,
	  name TEXT NOT NULL UNIQUE,
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateTaskCategoriesTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS task_categories;`)
	return err
}
