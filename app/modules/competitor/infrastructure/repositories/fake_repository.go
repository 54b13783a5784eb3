package competitordb

import (
	"context"

	"github.com/uptrace/bun"

	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	FindByFn               func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Competitor, error)
	ExistsByFn             func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)
	FindAllFn              func(ctx context.Context, db bun.IDB) ([]*Competitor, error)
	FindByNamesPartialFn   func(ctx context.Context, db bun.IDB, first, middle, last string) ([]*Competitor, error)
	InsertFn               func(ctx context.Context, db bun.IDB, competitor *Competitor) error
	UpdateFn               func(ctx context.Context, db bun.IDB, competitor *Competitor) error
	ReplaceNationalitiesFn func(ctx context.Context, db bun.IDB, competitor *Competitor, nationalities []*nationalitydb.Nationality) error
	DeleteFn               func(ctx context.Context, db bun.IDB, competitor *Competitor) error
}

func (f *FakeRepository) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Competitor, error) {
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

func (f *FakeRepository) FindAll(ctx context.Context, db bun.IDB) ([]*Competitor, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, db)
	}
	return nil, nil
}

func (f *FakeRepository) FindByNamesPartial(ctx context.Context, db bun.IDB, first, middle, last string) ([]*Competitor, error) {
	if f.FindByNamesPartialFn != nil {
		return f.FindByNamesPartialFn(ctx, db, first, middle, last)
	}
	return nil, nil
}

func (f *FakeRepository) Insert(ctx context.Context, db bun.IDB, competitor *Competitor) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, db, competitor)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, competitor *Competitor) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, competitor)
	}
	return nil
}

func (f *FakeRepository) ReplaceNationalities(ctx context.Context, db bun.IDB, competitor *Competitor, nationalities []*nationalitydb.Nationality) error {
	if f.ReplaceNationalitiesFn != nil {
		return f.ReplaceNationalitiesFn(ctx, db, competitor, nationalities)
	}
	competitor.Nationalities = nationalities
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, competitor *Competitor) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, competitor)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
