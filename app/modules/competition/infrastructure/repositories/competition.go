package competitiondb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new competition repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// FindBy returns the first competition matching the predicate, or nil.
func (r *Impl) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Competition, error) {
	return validation.FindFirst[Competition](ctx, r.resolveDB(db), conds)
}

// ExistsBy reports whether any competition matches the predicate.
func (r *Impl) ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
	return validation.ModelExists[Competition](ctx, r.resolveDB(db), conds)
}

// FindAll returns every competition.
func (r *Impl) FindAll(ctx context.Context, db bun.IDB) ([]*Competition, error) {
	var competitions []*Competition
	err := r.resolveDB(db).NewSelect().
		Model(&competitions).
		Order("competition_date ASC", "competition_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}
	return competitions, nil
}

// FindByNamePartial returns competitions whose name contains the substring,
// case-insensitively.
func (r *Impl) FindByNamePartial(ctx context.Context, db bun.IDB, partial string) ([]*Competition, error) {
	var competitions []*Competition
	err := r.resolveDB(db).NewSelect().
		Model(&competitions).
		Where("LOWER(competition_name) LIKE ?", "%"+partial+"%").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search competitions by name: %w", err)
	}
	return competitions, nil
}

// FindByNamePartialAndDate narrows FindByNamePartial to one date.
func (r *Impl) FindByNamePartialAndDate(ctx context.Context, db bun.IDB, partial string, date sharedtypes.Date) ([]*Competition, error) {
	var competitions []*Competition
	err := r.resolveDB(db).NewSelect().
		Model(&competitions).
		Where("LOWER(competition_name) LIKE ?", "%"+partial+"%").
		Where("competition_date = ?", date).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search competitions by name and date: %w", err)
	}
	return competitions, nil
}

// FindByDate returns competitions held on the given date.
func (r *Impl) FindByDate(ctx context.Context, db bun.IDB, date sharedtypes.Date) ([]*Competition, error) {
	var competitions []*Competition
	err := r.resolveDB(db).NewSelect().
		Model(&competitions).
		Where("competition_date = ?", date).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search competitions by date: %w", err)
	}
	return competitions, nil
}

// FindBetweenDates returns competitions held within the inclusive range.
func (r *Impl) FindBetweenDates(ctx context.Context, db bun.IDB, begin, end sharedtypes.Date) ([]*Competition, error) {
	var competitions []*Competition
	err := r.resolveDB(db).NewSelect().
		Model(&competitions).
		Where("competition_date BETWEEN ? AND ?", begin, end).
		Order("competition_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search competitions between dates: %w", err)
	}
	return competitions, nil
}

// Insert persists a new competition.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, competition *Competition) error {
	if _, err := r.resolveDB(db).NewInsert().Model(competition).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert competition: %w", err)
	}
	return nil
}

// Update persists changes to an existing competition.
func (r *Impl) Update(ctx context.Context, db bun.IDB, competition *Competition) error {
	if _, err := r.resolveDB(db).NewUpdate().Model(competition).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to update competition: %w", err)
	}
	return nil
}

// Delete removes a competition.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, competition *Competition) error {
	if _, err := r.resolveDB(db).NewDelete().Model(competition).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete competition: %w", err)
	}
	return nil
}

var _ Repository = (*Impl)(nil)
