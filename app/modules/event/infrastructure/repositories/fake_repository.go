package eventdb

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	FindByFn         func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Event, error)
	ExistsByFn       func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)
	FindAllFn        func(ctx context.Context, db bun.IDB) ([]*Event, error)
	FindByTypeFn     func(ctx context.Context, db bun.IDB, eventType string) ([]*Event, error)
	FindByDistanceFn func(ctx context.Context, db bun.IDB, distance decimal.Decimal) ([]*Event, error)
	InsertFn         func(ctx context.Context, db bun.IDB, event *Event) error
	UpdateFn         func(ctx context.Context, db bun.IDB, event *Event) error
	DeleteFn         func(ctx context.Context, db bun.IDB, event *Event) error
}

func (f *FakeRepository) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Event, error) {
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

func (f *FakeRepository) FindAll(ctx context.Context, db bun.IDB) ([]*Event, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, db)
	}
	return nil, nil
}

func (f *FakeRepository) FindByType(ctx context.Context, db bun.IDB, eventType string) ([]*Event, error) {
	if f.FindByTypeFn != nil {
		return f.FindByTypeFn(ctx, db, eventType)
	}
	return nil, nil
}

func (f *FakeRepository) FindByDistance(ctx context.Context, db bun.IDB, distance decimal.Decimal) ([]*Event, error) {
	if f.FindByDistanceFn != nil {
		return f.FindByDistanceFn(ctx, db, distance)
	}
	return nil, nil
}

func (f *FakeRepository) Insert(ctx context.Context, db bun.IDB, event *Event) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, db, event)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, event *Event) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, event)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, event *Event) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, event)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
