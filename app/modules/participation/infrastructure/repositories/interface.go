package participationdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Repository defines the contract for participation persistence. Every read
// that returns participations loads the full collaborator graph, since the
// wire representation is flattened from it.
type Repository interface {
	// FindBy returns the first participation matching the predicate with
	// collaborators loaded, or nil.
	FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Participation, error)

	// ExistsBy reports whether any participation matches the predicate.
	ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)

	// FindByTriple returns the participation for the
	// (competitor, competition, event) identity, or nil.
	FindByTriple(ctx context.Context, db bun.IDB, competitorID, competitionID, eventID uuid.UUID) (*Participation, error)

	// FindAll returns every participation with collaborators loaded.
	FindAll(ctx context.Context, db bun.IDB) ([]*Participation, error)

	// FindByCompetitor returns the competitor's participations.
	FindByCompetitor(ctx context.Context, db bun.IDB, competitorID uuid.UUID) ([]*Participation, error)

	// FindByCompetition returns the competition's participations.
	FindByCompetition(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]*Participation, error)

	// FindByEvent returns the event's participations.
	FindByEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]*Participation, error)

	// FindByResult returns the participations owning the given result.
	FindByResult(ctx context.Context, db bun.IDB, resultID uuid.UUID) ([]*Participation, error)

	// Insert persists a new participation.
	Insert(ctx context.Context, db bun.IDB, participation *Participation) error

	// Update persists changes to an existing participation.
	Update(ctx context.Context, db bun.IDB, participation *Participation) error

	// Delete removes a participation.
	Delete(ctx context.Context, db bun.IDB, participation *Participation) error
}
