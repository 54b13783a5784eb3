package contactdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new contact repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// FindBy returns the first contact matching the predicate, or nil.
func (r *Impl) FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Contact, error) {
	return validation.FindFirst[Contact](ctx, r.resolveDB(db), conds)
}

// ExistsBy reports whether any contact matches the predicate.
func (r *Impl) ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
	return validation.ModelExists[Contact](ctx, r.resolveDB(db), conds)
}

// FindByID returns the contact with the given id, or nil.
func (r *Impl) FindByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Contact, error) {
	return validation.FindFirst[Contact](ctx, r.resolveDB(db), validation.By("id", id))
}

// FindAll returns every contact.
func (r *Impl) FindAll(ctx context.Context, db bun.IDB) ([]*Contact, error) {
	var contacts []*Contact
	err := r.resolveDB(db).NewSelect().
		Model(&contacts).
		Order("last_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Insert persists a new contact.
func (r *Impl) Insert(ctx context.Context, db bun.IDB, contact *Contact) error {
	if _, err := r.resolveDB(db).NewInsert().Model(contact).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// Update persists changes to an existing contact.
func (r *Impl) Update(ctx context.Context, db bun.IDB, contact *Contact) error {
	if _, err := r.resolveDB(db).NewUpdate().Model(contact).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// Delete removes a contact.
func (r *Impl) Delete(ctx context.Context, db bun.IDB, contact *Contact) error {
	if _, err := r.resolveDB(db).NewDelete().Model(contact).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

var _ Repository = (*Impl)(nil)
