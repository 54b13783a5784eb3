// Package uowtest provides a fake UnitOfWork backed by the per-module fake
// repositories. RunInTx executes the callback directly with a nil
// connection, so service tests run without a database.
package uowtest

import (
	"context"

	"github.com/uptrace/bun"

	competitiondb "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories"
	competitordb "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories"
	contactdb "github.com/trackside-club/trackmeet-backend/app/modules/contact/infrastructure/repositories"
	eventdb "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories"
	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	participationdb "github.com/trackside-club/trackmeet-backend/app/modules/participation/infrastructure/repositories"
	resultdb "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/uow"
)

// Fake is an in-memory UnitOfWork for service tests.
type Fake struct {
	CompetitionRepo   *competitiondb.FakeRepository
	CompetitorRepo    *competitordb.FakeRepository
	ContactRepo       *contactdb.FakeRepository
	EventRepo         *eventdb.FakeRepository
	NationalityRepo   *nationalitydb.FakeRepository
	ParticipationRepo *participationdb.FakeRepository
	ResultRepo        *resultdb.FakeRepository
}

// New builds a Fake with every repository ready for function-field setup.
func New() *Fake {
	return &Fake{
		CompetitionRepo:   &competitiondb.FakeRepository{},
		CompetitorRepo:    &competitordb.FakeRepository{},
		ContactRepo:       &contactdb.FakeRepository{},
		EventRepo:         &eventdb.FakeRepository{},
		NationalityRepo:   &nationalitydb.FakeRepository{},
		ParticipationRepo: &participationdb.FakeRepository{},
		ResultRepo:        &resultdb.FakeRepository{},
	}
}

func (f *Fake) Competitions() competitiondb.Repository     { return f.CompetitionRepo }
func (f *Fake) Competitors() competitordb.Repository       { return f.CompetitorRepo }
func (f *Fake) Contacts() contactdb.Repository             { return f.ContactRepo }
func (f *Fake) Events() eventdb.Repository                 { return f.EventRepo }
func (f *Fake) Nationalities() nationalitydb.Repository    { return f.NationalityRepo }
func (f *Fake) Participations() participationdb.Repository { return f.ParticipationRepo }
func (f *Fake) Results() resultdb.Repository               { return f.ResultRepo }

func (f *Fake) RunInTx(ctx context.Context, fn func(ctx context.Context, db bun.IDB) error) error {
	return fn(ctx, nil)
}

var _ uow.UnitOfWork = (*Fake)(nil)
