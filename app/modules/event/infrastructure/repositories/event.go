package eventdb

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new event repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// FindBy returns the first event matching the predicate, or nil.
func (r *Impl) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Event, error) {
	return validation.FindFirst[Event](ctx, r.resolveDB(db), conds)
}

// ExistsBy reports whether any event matches the predicate.
func (r *Impl) ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
	return validation.ModelExists[Event](ctx, r.resolveDB(db), conds)
}

// FindAll returns every event.
func (r *Impl) FindAll(ctx context.Context, db bun.IDB) ([]*Event, error) {
	var events []*Event
	err := r.resolveDB(db).NewSelect().
		Model(&events).
		Order("distance ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// FindByType returns events with the exact type label.
func (r *Impl) FindByType(ctx context.Context, db bun.IDB, eventType string) ([]*Event, error) {
	var events []*Event
	err := r.resolveDB(db).NewSelect().
		Model(&events).
		Where("event_type = ?", eventType).
		Order("distance ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search events by type: %w", err)
	}
	return events, nil
}

// FindByDistance returns events with the exact distance.
func (r *Impl) FindByDistance(ctx context.Context, db bun.IDB, distance decimal.Decimal) ([]*Event, error) {
	var events []*Event
	err := r.resolveDB(db).NewSelect().
		Model(&events).
		Where("distance = ?", distance).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search events by distance: %w", err)
	}
	return events, nil
}

// Insert persists a new event.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, event *Event) error {
	if _, err := r.resolveDB(db).NewInsert().Model(event).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// Update persists changes to an existing event.
func (r *Impl) Update(ctx context.Context, db bun.IDB, event *Event) error {
	if _, err := r.resolveDB(db).NewUpdate().Model(event).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

// Delete removes an event.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, event *Event) error {
	if _, err := r.resolveDB(db).NewDelete().Model(event).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

var _ Repository = (*Impl)(nil)
