package competitormigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			_, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS competitors (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					first_name VARCHAR(50) NOT NULL,
					middle_name VARCHAR(50) NOT NULL,
					last_name VARCHAR(50) NOT NULL,
					phone VARCHAR(20) NOT NULL UNIQUE,
					email VARCHAR(60) NOT NULL UNIQUE
				);
			`)
			if err != nil {
				return fmt.Errorf("failed to create competitors table: %w", err)
			}

			_, err = tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS competitor_nationalities (
					competitor_id UUID NOT NULL REFERENCES competitors(id),
					nationality_id UUID NOT NULL REFERENCES nationalities(id),
					PRIMARY KEY (competitor_id, nationality_id)
				);
			`)
			if err != nil {
				return fmt.Errorf("failed to create competitor_nationalities table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS competitor_nationalities;`); err != nil {
				return fmt.Errorf("failed to drop competitor_nationalities table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS competitors;`); err != nil {
				return fmt.Errorf("failed to drop competitors table: %w", err)
			}
			return nil
		})
	})
}
