// Package uow aggregates every entity repository behind one handle passed to
// each service, so services never wire their own store access. It also owns
// the per-operation transaction boundary: every service method runs its
// reads and writes inside a single RunInTx call.
package uow

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	competitiondb "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories"
	competitordb "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories"
	contactdb "github.com/trackside-club/trackmeet-backend/app/modules/contact/infrastructure/repositories"
	eventdb "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories"
	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	participationdb "github.com/trackside-club/trackmeet-backend/app/modules/participation/infrastructure/repositories"
	resultdb "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories"
)

// UnitOfWork hands out the entity repositories and the transaction boundary.
type UnitOfWork interface {
	Competitions() competitiondb.Repository
	Competitors() competitordb.Repository
	Contacts() contactdb.Repository
	Events() eventdb.Repository
	Nationalities() nationalitydb.Repository
	Participations() participationdb.Repository
	Results() resultdb.Repository

	// RunInTx executes fn inside one database transaction. A nil underlying
	// connection (unit tests with fake repositories) runs fn directly.
	RunInTx(ctx context.Context, fn func(ctx context.Context, db bun.IDB) error) error
}

// Impl is the database-backed UnitOfWork.
type Impl struct {
	db             *bun.DB
	competitions   competitiondb.Repository
	competitors    competitordb.Repository
	contacts       contactdb.Repository
	events         eventdb.Repository
	nationalities  nationalitydb.Repository
	participations participationdb.Repository
	results        resultdb.Repository
}

// New builds a UnitOfWork over the given bun connection.
func New(db *bun.DB) *Impl {
	return &Impl{
		db:             db,
		competitions:   competitiondb.NewRepository(db),
		competitors:    competitordb.NewRepository(db),
		contacts:       contactdb.NewRepository(db),
		events:         eventdb.NewRepository(db),
		nationalities:  nationalitydb.NewRepository(db),
		participations: participationdb.NewRepository(db),
		results:        resultdb.NewRepository(db),
	}
}

func (u *Impl) Competitions() competitiondb.Repository     { return u.competitions }
func (u *Impl) Competitors() competitordb.Repository       { return u.competitors }
func (u *Impl) Contacts() contactdb.Repository             { return u.contacts }
func (u *Impl) Events() eventdb.Repository                 { return u.events }
func (u *Impl) Nationalities() nationalitydb.Repository    { return u.nationalities }
func (u *Impl) Participations() participationdb.Repository { return u.participations }
func (u *Impl) Results() resultdb.Repository               { return u.results }

// RunInTx executes fn inside one transaction so multi-step operations are
// all-or-nothing.
func (u *Impl) RunInTx(ctx context.Context, fn func(ctx context.Context, db bun.IDB) error) error {
	if u.db == nil {
		return fn(ctx, nil)
	}
	return u.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}

var _ UnitOfWork = (*Impl)(nil)
