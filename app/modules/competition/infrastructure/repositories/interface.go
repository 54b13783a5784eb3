package competitiondb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Repository defines the contract for competition persistence.
type Repository interface {
	// FindBy returns the first competition matching the predicate, or nil.
	FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Competition, error)

	// ExistsBy reports whether any competition matches the predicate.
	ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)

	// FindAll returns every competition.
	FindAll(ctx context.Context, db bun.IDB) ([]*Competition, error)

	// FindByNamePartial returns competitions whose name contains the
	// substring, case-insensitively.
	FindByNamePartial(ctx context.Context, db bun.IDB, partial string) ([]*Competition, error)

	// FindByNamePartialAndDate narrows FindByNamePartial to one date.
	FindByNamePartialAndDate(ctx context.Context, db bun.IDB, partial string, date sharedtypes.Date) ([]*Competition, error)

	// FindByDate returns competitions held on the given date.
	FindByDate(ctx context.Context, db bun.IDB, date sharedtypes.Date) ([]*Competition, error)

	// FindBetweenDates returns competitions held within the inclusive range.
	FindBetweenDates(ctx context.Context, db bun.IDB, begin, end sharedtypes.Date) ([]*Competition, error)

	// Insert persists a new competition.
	Insert(ctx context.Context, db bun.IDB, competition *Competition) error

	// Update persists changes to an existing competition.
	Update(ctx context.Context, db bun.IDB, competition *Competition) error

	// Delete removes a competition.
	Delete(ctx context.Context, db bun.IDB, competition *Competition) error
}
