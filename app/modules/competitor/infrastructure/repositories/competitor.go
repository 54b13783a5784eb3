package competitordb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new competitor repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// FindBy returns the first competitor matching the predicate with the
// nationality set loaded, or nil.
func (r *Impl) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Competitor, error) {
	if len(conds) == 0 {
		return nil, errors.New("competitordb: condition list must not be empty")
	}
	competitor := new(Competitor)
	q := r.resolveDB(db).NewSelect().
		Model(competitor).
		Relation("Nationalities")
	for _, c := range conds {
		q = q.Where("? = ?", bun.Ident(c.Column), c.Value)
	}
	if err := q.Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("competitor predicate query failed: %w", err)
	}
	return competitor, nil
}

// ExistsBy reports whether any competitor matches the predicate.
func (r *Impl) ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
	return validation.ModelExists[Competitor](ctx, r.resolveDB(db), conds)
}

// FindAll returns every competitor with nationality sets loaded.
func (r *Impl) FindAll(ctx context.Context, db bun.IDB) ([]*Competitor, error) {
	var competitors []*Competitor
	err := r.resolveDB(db).NewSelect().
		Model(&competitors).
		Relation("Nationalities").
		Order("last_name ASC", "first_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competitors: %w", err)
	}
	return competitors, nil
}

// FindByNamesPartial returns competitors where any of the three name fields
// contains the respective substring, case-insensitively.
func (r *Impl) FindByNamesPartial(ctx context.Context, db bun.IDB, first, middle, last string) ([]*Competitor, error) {
	var competitors []*Competitor
	err := r.resolveDB(db).NewSelect().
		Model(&competitors).
		Relation("Nationalities").
		Where("LOWER(first_name) LIKE ? OR LOWER(middle_name) LIKE ? OR LOWER(last_name) LIKE ?",
			"%"+first+"%", "%"+middle+"%", "%"+last+"%").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search competitors by names: %w", err)
	}
	return competitors, nil
}

// Insert persists a new competitor along with its nationality links.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, competitor *Competitor) error {
	conn := r.resolveDB(db)
	if _, err := conn.NewInsert().Model(competitor).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert competitor: %w", err)
	}
	return r.insertLinks(ctx, conn, competitor, competitor.Nationalities)
}

// Update persists changes to an existing competitor's scalar fields.
func (r *Impl) Update(ctx context.Context, db bun.IDB, competitor *Competitor) error {
	_, err := r.resolveDB(db).NewUpdate().
		Model(competitor).
		Column("first_name", "middle_name", "last_name", "phone", "email").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update competitor: %w", err)
	}
	return nil
}

// ReplaceNationalities swaps the competitor's nationality set wholesale.
func (r *Impl) ReplaceNationalities(ctx context.Context, db bun.IDB, competitor *Competitor, nationalities []*nationalitydb.Nationality) error {
	conn := r.resolveDB(db)
	_, err := conn.NewDelete().
		Model((*CompetitorNationality)(nil)).
		Where("competitor_id = ?", competitor.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear nationality links: %w", err)
	}
	if err := r.insertLinks(ctx, conn, competitor, nationalities); err != nil {
		return err
	}
	competitor.Nationalities = nationalities
	return nil
}

// Delete removes a competitor and its nationality links.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, competitor *Competitor) error {
	conn := r.resolveDB(db)
	_, err := conn.NewDelete().
		Model((*CompetitorNationality)(nil)).
		Where("competitor_id = ?", competitor.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear nationality links: %w", err)
	}
	if _, err := conn.NewDelete().Model(competitor).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete competitor: %w", err)
	}
	return nil
}

func (r *Impl) insertLinks(ctx context.Context, conn bun.IDB, competitor *Competitor, nationalities []*nationalitydb.Nationality) error {
	if len(nationalities) == 0 {
		return nil
	}
	links := make([]*CompetitorNationality, 0, len(nationalities))
	for _, n := range nationalities {
		links = append(links, &CompetitorNationality{
			CompetitorID:  competitor.ID,
			NationalityID: n.ID,
		})
	}
	if _, err := conn.NewInsert().Model(&links).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert nationality links: %w", err)
	}
	return nil
}

var _ Repository = (*Impl)(nil)
