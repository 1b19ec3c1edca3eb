package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateUsersTable, downCreateUsersTable)
}

func upCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE users (
	  id BIGSERIAL PRIMARY KEY,
	  username TEXT NOT NULL UNIQUE,
	  email TEXT NOT NULL UNIQUE,
	  firstname TEXT NOT NULL DEFAULT '',
	  lastname TEXT NOT NULL DEFAULT '',
	  role TEXT NOT NULL CHECK (role IN ('STUDENT', 'ADMIN_STUDENT', 'TEACHER', 'ADMIN_TEACHER', 'ADMIN')),
	  status TEXT NOT NULL DEFAULT 'ACTIVE',
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateUsersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS users;`)
	return err
}
