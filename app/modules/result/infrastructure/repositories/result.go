package resultdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new result repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// FindBy returns the first result matching the predicate, or nil.
func (r *Impl) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Result, error) {
	return validation.FindFirst[Result](ctx, r.resolveDB(db), conds)
}

// ExistsBy reports whether any result matches the predicate.
func (r *Impl) ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
	return validation.ModelExists[Result](ctx, r.resolveDB(db), conds)
}

// FindAll returns every result.
func (r *Impl) FindAll(ctx context.Context, db bun.IDB) ([]*Result, error) {
	var results []*Result
	err := r.resolveDB(db).NewSelect().
		Model(&results).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// FindBySeconds returns results with the exact elapsed time.
func (r *Impl) FindBySeconds(ctx context.Context, db bun.IDB, seconds float32) ([]*Result, error) {
	var results []*Result
	err := r.resolveDB(db).NewSelect().
		Model(&results).
		Where("seconds = ?", seconds).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search results by time: %w", err)
	}
	return results, nil
}

// FindByPlacePartial returns results whose place label contains the
// substring, case-insensitively.
func (r *Impl) FindByPlacePartial(ctx context.Context, db bun.IDB, partial string) ([]*Result, error) {
	var results []*Result
	err := r.resolveDB(db).NewSelect().
		Model(&results).
		Where("LOWER(place) LIKE ?", "%"+partial+"%").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search results by placement: %w", err)
	}
	return results, nil
}

// Insert persists a new result.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, result *Result) error {
	if _, err := r.resolveDB(db).NewInsert().Model(result).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

// Update persists changes to an existing result.
func (r *Impl) Update(ctx context.Context, db bun.IDB, result *Result) error {
	if _, err := r.resolveDB(db).NewUpdate().Model(result).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to update result: %w", err)
	}
	return nil
}

// Delete removes a result.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, result *Result) error {
	if _, err := r.resolveDB(db).NewDelete().Model(result).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	return nil
}

var _ Repository = (*Impl)(nil)
