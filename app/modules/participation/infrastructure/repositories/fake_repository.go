package participationdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	FindByFn            func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Participation, error)
	ExistsByFn          func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)
	FindByTripleFn      func(ctx context.Context, db bun.IDB, competitorID, competitionID, eventID uuid.UUID) (*Participation, error)
	FindAllFn           func(ctx context.Context, db bun.IDB) ([]*Participation, error)
	FindByCompetitorFn  func(ctx context.Context, db bun.IDB, competitorID uuid.UUID) ([]*Participation, error)
	FindByCompetitionFn func(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]*Participation, error)
	FindByEventFn       func(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]*Participation, error)
	FindByResultFn      func(ctx context.Context, db bun.IDB, resultID uuid.UUID) ([]*Participation, error)
	InsertFn            func(ctx context.Context, db bun.IDB, participation *Participation) error
	UpdateFn            func(ctx context.Context, db bun.IDB, participation *Participation) error
	DeleteFn            func(ctx context.Context, db bun.IDB, participation *Participation) error
}

func (f *FakeRepository) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Participation, error) {
	if f.FindByFn != nil {
		return f.FindByFn(ctx, db, conds)
	}
	return nil, nil
}

func (f *FakeRepository) ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
	if f.ExistsByFn != nil {
		return f.ExistsByFn(ctx, db, conds)
	}
	return false, nil
}

func (f *FakeRepository) FindByTriple(ctx context.Context, db bun.IDB, competitorID, competitionID, eventID uuid.UUID) (*Participation, error) {
	if f.FindByTripleFn != nil {
		return f.FindByTripleFn(ctx, db, competitorID, competitionID, eventID)
	}
	return nil, nil
}

func (f *FakeRepository) FindAll(ctx context.Context, db bun.IDB) ([]*Participation, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, db)
	}
	return nil, nil
}

func (f *FakeRepository) FindByCompetitor(ctx context.Context, db bun.IDB, competitorID uuid.UUID) ([]*Participation, error) {
	if f.FindByCompetitorFn != nil {
		return f.FindByCompetitorFn(ctx, db, competitorID)
	}
	return nil, nil
}

func (f *FakeRepository) FindByCompetition(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]*Participation, error) {
	if f.FindByCompetitionFn != nil {
		return f.FindByCompetitionFn(ctx, db, competitionID)
	}
	return nil, nil
}

func (f *FakeRepository) FindByEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]*Participation, error) {
	if f.FindByEventFn != nil {
		return f.FindByEventFn(ctx, db, eventID)
	}
	return nil, nil
}

func (f *FakeRepository) FindByResult(ctx context.Context, db bun.IDB, resultID uuid.UUID) ([]*Participation, error) {
	if f.FindByResultFn != nil {
		return f.FindByResultFn(ctx, db, resultID)
	}
	return nil, nil
}

func (f *FakeRepository) Insert(ctx context.Context, db bun.IDB, participation *Participation) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, db, participation)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, participation *Participation) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, participation)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, participation *Participation) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, participation)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
