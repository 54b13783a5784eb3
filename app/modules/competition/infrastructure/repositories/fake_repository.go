package competitiondb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	FindByFn                   func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Competition, error)
	ExistsByFn                 func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)
	FindAllFn                  func(ctx context.Context, db bun.IDB) ([]*Competition, error)
	FindByNamePartialFn        func(ctx context.Context, db bun.IDB, partial string) ([]*Competition, error)
	FindByNamePartialAndDateFn func(ctx context.Context, db bun.IDB, partial string, date sharedtypes.Date) ([]*Competition, error)
	FindByDateFn               func(ctx context.Context, db bun.IDB, date sharedtypes.Date) ([]*Competition, error)
	FindBetweenDatesFn         func(ctx context.Context, db bun.IDB, begin, end sharedtypes.Date) ([]*Competition, error)
	InsertFn                   func(ctx context.Context, db bun.IDB, competition *Competition) error
	UpdateFn                   func(ctx context.Context, db bun.IDB, competition *Competition) error
	DeleteFn                   func(ctx context.Context, db bun.IDB, competition *Competition) error
}

func (f *FakeRepository) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Competition, error) {
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

func (f *FakeRepository) FindAll(ctx context.Context, db bun.IDB) ([]*Competition, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, db)
	}
	return nil, nil
}

func (f *FakeRepository) FindByNamePartial(ctx context.Context, db bun.IDB, partial string) ([]*Competition, error) {
	if f.FindByNamePartialFn != nil {
		return f.FindByNamePartialFn(ctx, db, partial)
	}
	return nil, nil
}

func (f *FakeRepository) FindByNamePartialAndDate(ctx context.Context, db bun.IDB, partial string, date sharedtypes.Date) ([]*Competition, error) {
	if f.FindByNamePartialAndDateFn != nil {
		return f.FindByNamePartialAndDateFn(ctx, db, partial, date)
	}
	return nil, nil
}

func (f *FakeRepository) FindByDate(ctx context.Context, db bun.IDB, date sharedtypes.Date) ([]*Competition, error) {
	if f.FindByDateFn != nil {
		return f.FindByDateFn(ctx, db, date)
	}
	return nil, nil
}

func (f *FakeRepository) FindBetweenDates(ctx context.Context, db bun.IDB, begin, end sharedtypes.Date) ([]*Competition, error) {
	if f.FindBetweenDatesFn != nil {
		return f.FindBetweenDatesFn(ctx, db, begin, end)
	}
	return nil, nil
}

func (f *FakeRepository) Insert(ctx context.Context, db bun.IDB, competition *Competition) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, db, competition)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, competition *Competition) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, competition)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, competition *Competition) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, competition)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
