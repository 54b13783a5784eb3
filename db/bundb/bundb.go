// Package bundb owns the Postgres connection and bun initialization.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	competitordb "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/config"
)

// New connects to Postgres and returns a ready bun.DB. The join model is
// registered here so the competitor/nationality m2m relation resolves
// anywhere in the process.
func New(ctx context.Context, cfg config.PostgresConfig) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())
	RegisterModels(db)
	return db, nil
}

// RegisterModels registers the relation join tables. Integration tests that
// build their own bun.DB call this too.
func RegisterModels(db *bun.DB) {
	db.RegisterModel((*competitordb.CompetitorNationality)(nil))
}
