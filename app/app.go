// Package app assembles the application: database, repositories, services
// and the HTTP router.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/metrics"
	competitionservice "github.com/trackside-club/trackmeet-backend/app/modules/competition/application"
	competitionhandlers "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/handlers"
	competitorservice "github.com/trackside-club/trackmeet-backend/app/modules/competitor/application"
	competitorhandlers "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/handlers"
	contactservice "github.com/trackside-club/trackmeet-backend/app/modules/contact/application"
	contacthandlers "github.com/trackside-club/trackmeet-backend/app/modules/contact/infrastructure/handlers"
	eventservice "github.com/trackside-club/trackmeet-backend/app/modules/event/application"
	eventhandlers "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/handlers"
	nationalityservice "github.com/trackside-club/trackmeet-backend/app/modules/nationality/application"
	nationalityhandlers "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/handlers"
	participationservice "github.com/trackside-club/trackmeet-backend/app/modules/participation/application"
	participationhandlers "github.com/trackside-club/trackmeet-backend/app/modules/participation/infrastructure/handlers"
	resultservice "github.com/trackside-club/trackmeet-backend/app/modules/result/application"
	resulthandlers "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/handlers"
	"github.com/trackside-club/trackmeet-backend/app/uow"
	"github.com/trackside-club/trackmeet-backend/config"
	"github.com/trackside-club/trackmeet-backend/db/bundb"
)

// App holds the assembled application.
type App struct {
	Cfg     *config.Config
	Handler http.Handler

	db     *bun.DB
	logger *slog.Logger
}

// NewApp connects to the database and wires every module behind one router.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := bundb.New(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	unit := uow.New(db)

	nationalitySvc := nationalityservice.NewNationalityService(unit, logger)
	competitionSvc := competitionservice.NewCompetitionService(unit, logger)
	eventSvc := eventservice.NewEventService(unit, logger)
	resultSvc := resultservice.NewResultService(unit, logger)
	competitorSvc := competitorservice.NewCompetitorService(unit, logger)
	participationSvc := participationservice.NewParticipationService(unit, logger)
	contactSvc := contactservice.NewContactService(unit, logger)

	handler := NewRouter(metrics.New(),
		nationalityhandlers.New(nationalitySvc),
		competitionhandlers.New(competitionSvc),
		eventhandlers.New(eventSvc),
		resulthandlers.New(resultSvc),
		competitorhandlers.New(competitorSvc),
		participationhandlers.New(participationSvc),
		contacthandlers.New(contactSvc),
	)

	return &App{
		Cfg:     cfg,
		Handler: handler,
		db:      db,
		logger:  logger,
	}, nil
}

// Close releases the database connection pool.
func (a *App) Close() error {
	return a.db.Close()
}
