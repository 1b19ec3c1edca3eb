package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateBookingSlotsTable, downCreateBookingSlotsTable)
}

// Слоты не удаляются каскадно: сервис удаляет их явно перед удалением сессии.
func upCreateBookingSlotsTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE booking_slots (
	  id BIGSERIAL PRIMARY KEY,
	  defence_session_id BIGINT NOT NULL REFERENCES defence_sessions(id) ON DELETE RESTRICT,
	  start_time TIME NOT NULL,
	  end_time TIME NOT NULL,
	  is_booked BOOLEAN NOT NULL DEFAULT false,
	  user_id BIGINT REFERENCES users(id),
	  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
	  CONSTRAINT booking_slots_time_order CHECK (start_time < end_time),
	  CONSTRAINT booking_slots_booked_user CHECK (is_booked = (user_id IS NOT NULL)),
	  CONSTRAINT booking_slots_session_start UNIQUE (defence_session_id, start_time)
	);

	CREATE INDEX idx_booking_slots_user_id ON booking_slots(user_id);
	`

	_, err := tx.ExecContext(ctx, query)
	return err
}

func downCreateBookingSlotsTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS booking_slots;`)
	return err
}
