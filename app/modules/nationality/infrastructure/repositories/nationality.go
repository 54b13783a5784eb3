package nationalitydb

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

// NewRepository creates a new nationality repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// FindBy returns the first nationality matching the predicate, or nil.
func (r *Impl) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Nationality, error) {
	return validation.FindFirst[Nationality](ctx, r.resolveDB(db), conds)
}

// ExistsBy reports whether any nationality matches the predicate.
func (r *Impl) ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
	return validation.ModelExists[Nationality](ctx, r.resolveDB(db), conds)
}

// FindAll returns every nationality.
func (r *Impl) FindAll(ctx context.Context, db bun.IDB) ([]*Nationality, error) {
	var nationalities []*Nationality
	err := r.resolveDB(db).NewSelect().
		Model(&nationalities).
		Order("country_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nationalities: %w", err)
	}
	return nationalities, nil
}

// FindByPartialName returns nationalities whose country name contains the
// substring, case-insensitively.
func (r *Impl) FindByPartialName(ctx context.Context, db bun.IDB, partial string) ([]*Nationality, error) {
	var nationalities []*Nationality
	err := r.resolveDB(db).NewSelect().
		Model(&nationalities).
		Where("LOWER(country_name) LIKE ?", "%"+partial+"%").
		Order("country_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search nationalities: %w", err)
	}
	return nationalities, nil
}

// Insert persists a new nationality.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, nationality *Nationality) error {
	if _, err := r.resolveDB(db).NewInsert().Model(nationality).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert nationality: %w", err)
	}
	return nil
}

// Update persists changes to an existing nationality.
func (r *Impl) Update(ctx context.Context, db bun.IDB, nationality *Nationality) error {
	if _, err := r.resolveDB(db).NewUpdate().Model(nationality).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to update nationality: %w", err)
	}
	return nil
}

// Delete removes a nationality.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, nationality *Nationality) error {
	if _, err := r.resolveDB(db).NewDelete().Model(nationality).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete nationality: %w", err)
	}
	return nil
}

var _ Repository = (*Impl)(nil)
