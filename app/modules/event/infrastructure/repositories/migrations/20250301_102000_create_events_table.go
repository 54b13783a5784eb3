package eventmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS events (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				distance NUMERIC(10,2) NOT NULL UNIQUE,
				event_type TEXT NOT NULL
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create events table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS events;`)
		if err != nil {
			return fmt.Errorf("failed to drop events table: %w", err)
		}
		return nil
	})
}
