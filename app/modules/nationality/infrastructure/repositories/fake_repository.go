package nationalitydb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	FindByFn            func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Nationality, error)
	ExistsByFn          func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)
	FindAllFn           func(ctx context.Context, db bun.IDB) ([]*Nationality, error)
	FindByPartialNameFn func(ctx context.Context, db bun.IDB, partial string) ([]*Nationality, error)
	InsertFn            func(ctx context.Context, db bun.IDB, nationality *Nationality) error
	UpdateFn            func(ctx context.Context, db bun.IDB, nationality *Nationality) error
	DeleteFn            func(ctx context.Context, db bun.IDB, nationality *Nationality) error
}

func (f *FakeRepository) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Nationality, error) {
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

func (f *FakeRepository) FindAll(ctx context.Context, db bun.IDB) ([]*Nationality, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, db)
	}
	return nil, nil
}

func (f *FakeRepository) FindByPartialName(ctx context.Context, db bun.IDB, partial string) ([]*Nationality, error) {
	if f.FindByPartialNameFn != nil {
		return f.FindByPartialNameFn(ctx, db, partial)
	}
	return nil, nil
}

func (f *FakeRepository) Insert(ctx context.Context, db bun.IDB, nationality *Nationality) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, db, nationality)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, nationality *Nationality) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, nationality)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, nationality *Nationality) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, nationality)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
