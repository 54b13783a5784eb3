package nationalitymigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS nationalities (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				country_name VARCHAR(50) NOT NULL UNIQUE
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create nationalities table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS nationalities;`)
		if err != nil {
			return fmt.Errorf("failed to drop nationalities table: %w", err)
		}
		return nil
	})
}
