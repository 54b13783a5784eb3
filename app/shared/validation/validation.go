// Package validation centralizes the existence and uniqueness predicates the
// services run before every mutating operation. Predicates are an ordered
// list of column/value equality conditions ANDed together, so the same
// helpers work across every entity type without per-entity code.
package validation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
)

// Cond is one equality constraint. Multiple conditions are ANDed together.
type Cond struct {
	Column string
	Value  any
}

// By is shorthand for a single-column condition list.
func By(column string, value any) []Cond {
	return []Cond{{Column: column, Value: value}}
}

// Finder is the slice of a repository the existence check needs: first match
// for a predicate, or nil when nothing matches.
type Finder[T any] interface {
	FindBy(ctx context.Context, db bun.IDB, conds []Cond) (*T, error)
}

// Checker is the slice of a repository the uniqueness check needs.
type Checker interface {
	ExistsBy(ctx context.Context, db bun.IDB, conds []Cond) (bool, error)
}

// Exists returns the first row the repository finds for the predicate, or a
// NotFound failure carrying msg when nothing matches.
func Exists[T any](ctx context.Context, db bun.IDB, repo Finder[T], conds []Cond, msg string) (*T, error) {
	entity, err := repo.FindBy(ctx, db, conds)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperrors.NotFound(msg)
	}
	return entity, nil
}

// Unique fails with a Conflict carrying msg when any row matches the
// predicate.
func Unique(ctx context.Context, db bun.IDB, repo Checker, conds []Cond, msg string) error {
	exists, err := repo.ExistsBy(ctx, db, conds)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.Conflict(msg)
	}
	return nil
}

// NonEmpty fails with NotFound when the list is empty.
func NonEmpty[T any](list []T, msg string) error {
	if len(list) == 0 {
		return apperrors.NotFound(msg)
	}
	return nil
}

// NotNil fails with NotFound when the entity is nil.
func NotNil[T any](entity *T, msg string) error {
	if entity == nil {
		return apperrors.NotFound(msg)
	}
	return nil
}

// FindFirst is the bun query builder behind every repository's FindBy: an
// AND of equality clauses, first row only, nil when nothing matches.
func FindFirst[T any](ctx context.Context, db bun.IDB, conds []Cond) (*T, error) {
	model := new(T)
	q, err := selectWhere(db.NewSelect().Model(model), conds)
	if err != nil {
		return nil, err
	}
	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("predicate query failed: %w", err)
	}
	return model, nil
}

// ModelExists is the bun query builder behind every repository's ExistsBy.
func ModelExists[T any](ctx context.Context, db bun.IDB, conds []Cond) (bool, error) {
	q, err := selectWhere(db.NewSelect().Model((*T)(nil)), conds)
	if err != nil {
		return false, err
	}
	exists, err := q.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("existence query failed: %w", err)
	}
	return exists, nil
}

func selectWhere(q *bun.SelectQuery, conds []Cond) (*bun.SelectQuery, error) {
	if len(conds) == 0 {
		return nil, errors.New("validation: condition list must not be empty")
	}
	for _, c := range conds {
		q = q.Where("? = ?", bun.Ident(c.Column), c.Value)
	}
	return q, nil
}
