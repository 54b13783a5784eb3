package eventdb

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Repository defines the contract for event persistence.
type Repository interface {
	// FindBy returns the first event matching the predicate, or nil.
	FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Event, error)

	// ExistsBy reports whether any event matches the predicate.
	ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)

	// FindAll returns every event.
	FindAll(ctx context.Context, db bun.IDB) ([]*Event, error)

	// FindByType returns events with the exact type label.
	FindByType(ctx context.Context, db bun.IDB, eventType string) ([]*Event, error)

	// FindByDistance returns events with the exact distance.
	FindByDistance(ctx context.Context, db bun.IDB, distance decimal.Decimal) ([]*Event, error)

	// Insert persists a new event.
	Insert(ctx context.Context, db bun.IDB, event *Event) error

	// Update persists changes to an existing event.
	Update(ctx context.Context, db bun.IDB, event *Event) error

	// Delete removes an event.
	Delete(ctx context.Context, db bun.IDB, event *Event) error
}
