package nationalitydb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Repository defines the contract for nationality persistence.
type Repository interface {
	// FindBy returns the first nationality matching the predicate, or nil.
	FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Nationality, error)

	// ExistsBy reports whether any nationality matches the predicate.
	ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)

	// FindAll returns every nationality.
	FindAll(ctx context.Context, db bun.IDB) ([]*Nationality, error)

	// FindByPartialName returns nationalities whose country name contains the
	// substring, case-insensitively.
	FindByPartialName(ctx context.Context, db bun.IDB, partial string) ([]*Nationality, error)

	// Insert persists a new nationality.
	Insert(ctx context.Context, db bun.IDB, nationality *Nationality) error

	// Update persists changes to an existing nationality.
	Update(ctx context.Context, db bun.IDB, nationality *Nationality) error

	// Delete removes a nationality.
	Delete(ctx context.Context, db bun.IDB, nationality *Nationality) error
}
