package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	competitiondb "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories"
	competitionmigrations "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories/migrations"
	competitormigrations "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories/migrations"
	contactmigrations "github.com/trackside-club/trackmeet-backend/app/modules/contact/infrastructure/repositories/migrations"
	eventmigrations "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories/migrations"
	nationalitymigrations "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories/migrations"
	participationmigrations "github.com/trackside-club/trackmeet-backend/app/modules/participation/infrastructure/repositories/migrations"
	resultmigrations "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories/migrations"
	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
	"github.com/trackside-club/trackmeet-backend/config"
	"github.com/trackside-club/trackmeet-backend/db/bundb"
)

// moduleOrder controls migration order: referenced tables before the tables
// holding their foreign keys.
var moduleOrder = []string{
	"nationality",
	"competition",
	"event",
	"result",
	"competitor",
	"participation",
	"contact",
}

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := bundb.New(context.Background(), cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	migrators := map[string]*migrate.Migrator{
		"nationality":   migrate.NewMigrator(db, nationalitymigrations.Migrations),
		"competition":   migrate.NewMigrator(db, competitionmigrations.Migrations),
		"event":         migrate.NewMigrator(db, eventmigrations.Migrations),
		"result":        migrate.NewMigrator(db, resultmigrations.Migrations),
		"competitor":    migrate.NewMigrator(db, competitormigrations.Migrations),
		"participation": migrate.NewMigrator(db, participationmigrations.Migrations),
		"contact":       migrate.NewMigrator(db, contactmigrations.Migrations),
	}

	cliApp := &cli.App{
		Name: "bun",
		Commands: []*cli.Command{
			newMigrateCommand(migrators),
			newSeedCommand(db),
		},
	}

	args := append([]string{os.Args[0]}, flag.Args()...)
	if err := cliApp.Run(args); err != nil {
		log.Fatal(err)
	}
}

func newMigrateCommand(migrators map[string]*migrate.Migrator) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					for _, moduleName := range moduleOrder {
						fmt.Printf("Initializing migrations for module: %s\n", moduleName)
						if err := migrators[moduleName].Init(c.Context); err != nil {
							return fmt.Errorf("init failed for module %s: %w", moduleName, err)
						}
					}
					return nil
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					for _, moduleName := range moduleOrder {
						group, err := migrators[moduleName].Migrate(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No new migrations to run for module: %s\n", moduleName)
						} else {
							fmt.Printf("Migrated module: %s to %s\n", moduleName, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group per module",
				Action: func(c *cli.Context) error {
					// Reverse order so dependent tables drop first.
					for i := len(moduleOrder) - 1; i >= 0; i-- {
						moduleName := moduleOrder[i]
						group, err := migrators[moduleName].Rollback(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Printf("No groups to roll back for module: %s\n", moduleName)
						} else {
							fmt.Printf("Rolled back module: %s to %s\n", moduleName, group)
						}
					}
					return nil
				},
			},
			{
				Name:  "create_go",
				Usage: "create Go migration for a module",
				Action: func(c *cli.Context) error {
					moduleName := c.Args().First()
					migrator, ok := migrators[moduleName]
					if !ok {
						return fmt.Errorf("invalid module name: %s", moduleName)
					}
					name := strings.Join(c.Args().Tail(), "_")
					mf, err := migrator.CreateGoMigration(c.Context, name)
					if err != nil {
						return err
					}
					fmt.Printf("Created migration for module %s: %s (%s)\n", moduleName, mf.Name, mf.Path)
					return nil
				},
			},
			{
				Name:  "status",
				Usage: "print migration status per module",
				Action: func(c *cli.Context) error {
					for _, moduleName := range moduleOrder {
						ms, err := migrators[moduleName].MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Printf("%s: %s (unapplied: %s)\n", moduleName, ms, ms.Unapplied())
					}
					return nil
				},
			},
		},
	}
}

var seedCompetitions = []struct {
	name string
	date sharedtypes.Date
}{
	{"Bulgarian Cup I 2022", sharedtypes.NewDate(2022, time.October, 10)},
	{"Bulgarian Cup I 2023", sharedtypes.NewDate(2023, time.October, 10)},
	{"Bulgarian Cup I 2024", sharedtypes.NewDate(2024, time.October, 10)},
	{"Bulgarian Cup III 2022", sharedtypes.NewDate(2022, time.May, 25)},
	{"Bulgarian Cup III 2023", sharedtypes.NewDate(2023, time.May, 25)},
	{"Bulgarian Cup IV 2025", sharedtypes.NewDate(2025, time.January, 7)},
}

// newSeedCommand inserts the starter competition calendar. The seed is
// idempotent: it does nothing when any competition already exists.
func newSeedCommand(db *bun.DB) *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert the starter competition calendar if the table is empty",
		Action: func(c *cli.Context) error {
			repo := competitiondb.NewRepository(db)
			existing, err := repo.FindAll(c.Context, nil)
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				fmt.Println("Competitions already present, skipping seed")
				return nil
			}
			for _, seed := range seedCompetitions {
				err := repo.Insert(c.Context, nil, &competitiondb.Competition{
					CompetitionName: seed.name,
					CompetitionDate: seed.date,
				})
				if err != nil {
					return fmt.Errorf("failed to seed competition %q: %w", seed.name, err)
				}
			}
			fmt.Printf("Seeded %d competitions\n", len(seedCompetitions))
			return nil
		},
	}
}
