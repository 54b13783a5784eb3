package participationmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS participations (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				competitor_id UUID NOT NULL REFERENCES competitors(id),
				competition_id UUID NOT NULL REFERENCES competitions(id),
				event_id UUID NOT NULL REFERENCES events(id),
				result_id UUID NOT NULL REFERENCES results(id),
				UNIQUE (competitor_id, competition_id, event_id)
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create participations table: %w", err)
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS participations;`); err != nil {
			return fmt.Errorf("failed to drop participations table: %w", err)
		}
		return nil
	})
}
