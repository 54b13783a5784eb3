package contactmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS contacts (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				first_name VARCHAR(20) NOT NULL,
				middle_name VARCHAR(60),
				last_name VARCHAR(60) NOT NULL,
				phone VARCHAR(20) NOT NULL UNIQUE,
				email VARCHAR(60) NOT NULL UNIQUE
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create contacts table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS contacts;`); err != nil {
			return fmt.Errorf("failed to drop contacts table: %w", err)
		}
		return nil
	})
}
