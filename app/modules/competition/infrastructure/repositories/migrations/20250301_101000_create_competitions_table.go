package competitionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS competitions (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				competition_name VARCHAR(50) NOT NULL,
				competition_date DATE NOT NULL
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create competitions table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS competitions;`)
		if err != nil {
			return fmt.Errorf("failed to drop competitions table: %w", err)
		}
		return nil
	})
}
