package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent cannot
// express. The due-schedule index keeps the 1s scheduler poll cheap: only
// enabled, not-yet-completed schedules are indexed by their next run time.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_schedules_due
		ON schedules (next_run_at)
		WHERE enabled AND NOT completed`)
	if err != nil {
		return fmt.Errorf("failed to create due-schedule index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_triggers_event_enabled
		ON triggers (event_type)
		WHERE enabled AND type = 'event'`)
	if err != nil {
		return fmt.Errorf("failed to create event-trigger index: %w", err)
	}

	return nil
}
