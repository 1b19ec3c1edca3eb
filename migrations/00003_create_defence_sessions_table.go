package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateDefenceSessionsTable, downCreateDefenceSessionsTable)
}

func upCreateDefenceSessionsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE defence_sessions (
	  id BIGSERIAL PRIMARY KEY,
	  description TEXT NOT NULL DEFAULT '',
	  date DATE NOT NULL,
	  start_time TIME NOT NULL,
	  end_time TIME NOT NULL,
	  task_category_id BIGINT NOT NULL REFERENCES task_categories(id),
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  CONSTRAINT defence_sessions_time_order CHECK (start_time < end_time)
	);

	CREATE INDEX idx_defence_sessions_date ON defence_sessions(date);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateDefenceSessionsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS defence_sessions;`)
	return err
}
