package resultdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	FindByFn             func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Result, error)
	ExistsByFn           func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)
	FindAllFn            func(ctx context.Context, db bun.IDB) ([]*Result, error)
	FindBySecondsFn      func(ctx context.Context, db bun.IDB, seconds float32) ([]*Result, error)
	FindByPlacePartialFn func(ctx context.Context, db bun.IDB, partial string) ([]*Result, error)
	InsertFn             func(ctx context.Context, db bun.IDB, result *Result) error
	UpdateFn             func(ctx context.Context, db bun.IDB, result *Result) error
	DeleteFn             func(ctx context.Context, db bun.IDB, result *Result) error
}

func (f *FakeRepository) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Result, error) {
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

func (f *FakeRepository) FindAll(ctx context.Context, db bun.IDB) ([]*Result, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, db)
	}
	return nil, nil
}

func (f *FakeRepository) FindBySeconds(ctx context.Context, db bun.IDB, seconds float32) ([]*Result, error) {
	if f.FindBySecondsFn != nil {
		return f.FindBySecondsFn(ctx, db, seconds)
	}
	return nil, nil
}

func (f *FakeRepository) FindByPlacePartial(ctx context.Context, db bun.IDB, partial string) ([]*Result, error) {
	if f.FindByPlacePartialFn != nil {
		return f.FindByPlacePartialFn(ctx, db, partial)
	}
	return nil, nil
}

func (f *FakeRepository) Insert(ctx context.Context, db bun.IDB, result *Result) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, db, result)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, result *Result) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, result)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, result *Result) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, result)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
