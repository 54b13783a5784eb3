package participationdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new participation repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// withGraph attaches the collaborator relations every read needs.
func withGraph(q *bun.SelectQuery) *bun.SelectQuery {
	return q.
		Relation("Competitor").
		Relation("Competitor.Nationalities").
		Relation("Competition").
		Relation("Event").
		Relation("Result")
}

// FindBy returns the first participation matching the predicate with
// collaborators loaded, or nil.
func (r *Impl) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Participation, error) {
	participation := &Participation{}
	q := withGraph(r.resolveDB(db).NewSelect().Model(participation))
	for _, c := range conds {
		q = q.Where("? = ?", bun.Ident("p."+c.Column), c.Value)
	}
	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find participation: %w", err)
	}
	return participation, nil
}

// ExistsBy reports whether any participation matches the predicate.
func (r *Impl) ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
	return validation.ModelExists[Participation](ctx, r.resolveDB(db), conds)
}

// FindByTriple returns the participation for the
// (competitor, competition, event) identity, or nil.
func (r *Impl) FindByTriple(ctx context.Context, db bun.IDB, competitorID, competitionID, eventID uuid.UUID) (*Participation, error) {
	return r.FindBy(ctx, db, []validation.Cond{
		{Column: "competitor_id", Value: competitorID},
		{Column: "competition_id", Value: competitionID},
		{Column: "event_id", Value: eventID},
	})
}

// FindAll returns every participation with collaborators loaded.
func (r *Impl) FindAll(ctx context.Context, db bun.IDB) ([]*Participation, error) {
	var participations []*Participation
	err := withGraph(r.resolveDB(db).NewSelect().Model(&participations)).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}
	return participations, nil
}

func (r *Impl) findByFK(ctx context.Context, db bun.IDB, column string, id uuid.UUID) ([]*Participation, error) {
	var participations []*Participation
	err := withGraph(r.resolveDB(db).NewSelect().Model(&participations)).
		Where("? = ?", bun.Ident("p."+column), id).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations by %s: %w", column, err)
	}
	return participations, nil
}

// FindByCompetitor returns the competitor's participations.
func (r *Impl) FindByCompetitor(ctx context.Context, db bun.IDB, competitorID uuid.UUID) ([]*Participation, error) {
	return r.findByFK(ctx, db, "competitor_id", competitorID)
}

// FindByCompetition returns the competition's participations.
func (r *Impl) FindByCompetition(ctx context.Context, db bun.IDB, competitionID uuid.UUID) ([]*Participation, error) {
	return r.findByFK(ctx, db, "competition_id", competitionID)
}

// FindByEvent returns the event's participations.
func (r *Impl) FindByEvent(ctx context.Context, db bun.IDB, eventID uuid.UUID) ([]*Participation, error) {
	return r.findByFK(ctx, db, "event_id", eventID)
}

// FindByResult returns the participations owning the given result.
func (r *Impl) FindByResult(ctx context.Context, db bun.IDB, resultID uuid.UUID) ([]*Participation, error) {
	return r.findByFK(ctx, db, "result_id", resultID)
}

// Insert persists a new participation.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, participation *Participation) error {
	_, err := r.resolveDB(db).NewInsert().Model(participation).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert participation: %w", err)
	}
	return nil
}

// Update persists changes to an existing participation.
func (r *Impl) Update(ctx context.Context, db bun.IDB, participation *Participation) error {
	_, err := r.resolveDB(db).NewUpdate().Model(participation).WherePK().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update participation: %w", err)
	}
	return nil
}

// Delete removes a participation.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, participation *Participation) error {
	_, err := r.resolveDB(db).NewDelete().Model(participation).WherePK().Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete participation: %w", err)
	}
	return nil
}

var _ Repository = (*Impl)(nil)
