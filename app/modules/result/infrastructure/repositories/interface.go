package resultdb

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Repository defines the contract for result persistence.
type Repository interface {
	// FindBy returns the first result matching the predicate, or nil.
	FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Result, error)

	// ExistsBy reports whether any result matches the predicate.
	ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)

	// FindAll returns every result.
	FindAll(ctx context.Context, db bun.IDB) ([]*Result, error)

	// FindBySeconds returns results with the exact elapsed time.
	FindBySeconds(ctx context.Context, db bun.IDB, seconds float32) ([]*Result, error)

	// FindByPlacePartial returns results whose place label contains the
	// substring, case-insensitively.
	FindByPlacePartial(ctx context.Context, db bun.IDB, partial string) ([]*Result, error)

	// Insert persists a new result.
	Insert(ctx context.Context, db bun.IDB, result *Result) error

	// Update persists changes to an existing result.
	Update(ctx context.Context, db bun.IDB, result *Result) error

	// Delete removes a result.
	Delete(ctx context.Context, db bun.IDB, result *Result) error
}
