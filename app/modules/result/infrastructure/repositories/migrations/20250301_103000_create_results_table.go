package resultmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS results (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				seconds REAL NOT NULL,
				finished BOOLEAN NOT NULL,
				place TEXT NOT NULL
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create results table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS results;`)
		if err != nil {
			return fmt.Errorf("failed to drop results table: %w", err)
		}
		return nil
	})
}
