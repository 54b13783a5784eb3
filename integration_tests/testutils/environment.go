// Package testutils wires a real Postgres-backed environment for the
// integration tests: container, bun connection, and migrated schema.
package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	competitionmigrations "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories/migrations"
	competitormigrations "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories/migrations"
	contactmigrations "github.com/trackside-club/trackmeet-backend/app/modules/contact/infrastructure/repositories/migrations"
	eventmigrations "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories/migrations"
	nationalitymigrations "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories/migrations"
	participationmigrations "github.com/trackside-club/trackmeet-backend/app/modules/participation/infrastructure/repositories/migrations"
	resultmigrations "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories/migrations"
	"github.com/trackside-club/trackmeet-backend/config"
	"github.com/trackside-club/trackmeet-backend/db/bundb"
	"github.com/trackside-club/trackmeet-backend/integration_tests/containers"
)

// migrationSets lists every module's migrations in foreign-key order:
// referenced tables before the tables pointing at them.
var migrationSets = []*migrate.Migrations{
	nationalitymigrations.Migrations,
	competitionmigrations.Migrations,
	eventmigrations.Migrations,
	resultmigrations.Migrations,
	competitormigrations.Migrations,
	participationmigrations.Migrations,
	contactmigrations.Migrations,
}

// truncateOrder lists every table, dependents first.
var truncateOrder = []string{
	"participations",
	"competitor_nationalities",
	"results",
	"competitors",
	"events",
	"competitions",
	"nationalities",
	"contacts",
}

// TestEnvironment is the shared state of one integration test run.
type TestEnvironment struct {
	DB        *bun.DB
	DSN       string
	container *postgres.PostgresContainer
}

// NewTestEnvironment starts a Postgres container, connects bun to it and
// migrates the full schema.
func NewTestEnvironment(t *testing.T) (*TestEnvironment, error) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	db, err := bundb.New(ctx, config.PostgresConfig{DSN: dsn})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	for _, migrations := range migrationSets {
		migrator := migrate.NewMigrator(db, migrations)
		if err := migrator.Init(ctx); err != nil {
			_ = db.Close()
			_ = container.Terminate(ctx)
			return nil, fmt.Errorf("failed to init migrations: %w", err)
		}
		if _, err := migrator.Migrate(ctx); err != nil {
			_ = db.Close()
			_ = container.Terminate(ctx)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	env := &TestEnvironment{DB: db, DSN: dsn, container: container}
	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cleanupCancel()
		_ = db.Close()
		_ = container.Terminate(cleanupCtx)
	})
	return env, nil
}

// Reset empties every table so each test starts from a blank slate.
func (e *TestEnvironment) Reset(ctx context.Context) error {
	for _, table := range truncateOrder {
		if _, err := e.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}
