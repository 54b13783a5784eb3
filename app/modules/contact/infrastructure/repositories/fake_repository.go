package contactdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// FakeRepository is a fake implementation of Repository for testing.
type FakeRepository struct {
	FindByFn   func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Contact, error)
	ExistsByFn func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)
	FindByIDFn func(ctx context.Context, db bun.IDB, id uuid.UUID) (*Contact, error)
	FindAllFn  func(ctx context.Context, db bun.IDB) ([]*Contact, error)
	InsertFn   func(ctx context.Context, db bun.IDB, contact *Contact) error
	UpdateFn   func(ctx context.Context, db bun.IDB, contact *Contact) error
	DeleteFn   func(ctx context.Context, db bun.IDB, contact *Contact) error
}

func (f *FakeRepository) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Contact, error) {
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

func (f *FakeRepository) FindByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Contact, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, db, id)
	}
	return nil, nil
}

func (f *FakeRepository) FindAll(ctx context.Context, db bun.IDB) ([]*Contact, error) {
	if f.FindAllFn != nil {
		return f.FindAllFn(ctx, db)
	}
	return nil, nil
}

func (f *FakeRepository) Insert(ctx context.Context, db bun.IDB, contact *Contact) error {
	if f.InsertFn != nil {
		return f.InsertFn(ctx, db, contact)
	}
	return nil
}

func (f *FakeRepository) Update(ctx context.Context, db bun.IDB, contact *Contact) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, db, contact)
	}
	return nil
}

func (f *FakeRepository) Delete(ctx context.Context, db bun.IDB, contact *Contact) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, db, contact)
	}
	return nil
}

var _ Repository = (*FakeRepository)(nil)
