package competitordb

import (
	"context"

	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"

	"github.com/uptrace/bun"
)

// Repository defines the contract for competitor persistence.
type Repository interface {
	// FindBy returns the first competitor matching the predicate with the
	// nationality set loaded, or nil.
	FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Competitor, error)

	// ExistsBy reports whether any competitor matches the predicate.
	ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)

	// FindAll returns every competitor with nationality sets loaded.
	FindAll(ctx context.Context, db bun.IDB) ([]*Competitor, error)

	// FindByNamesPartial returns competitors where any of the three name
	// fields contains the respective substring, case-insensitively.
	FindByNamesPartial(ctx context.Context, db bun.IDB, first, middle, last string) ([]*Competitor, error)

	// Insert persists a new competitor along with its nationality links.
	Insert(ctx context.Context, db bun.IDB, competitor *Competitor) error

	// Update persists changes to an existing competitor's scalar fields.
	Update(ctx context.Context, db bun.IDB, competitor *Competitor) error

	// ReplaceNationalities swaps the competitor's nationality set wholesale.
	ReplaceNationalities(ctx context.Context, db bun.IDB, competitor *Competitor, nationalities []*nationalitydb.Nationality) error

	// Delete removes a competitor and its nationality links.
	Delete(ctx context.Context, db bun.IDB, competitor *Competitor) error
}
