package contactdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
)

// Repository defines the contract for contact persistence.
type Repository interface {
	// FindBy returns the first contact matching the predicate, or nil.
	FindBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (*Contact, error)

	// ExistsBy reports whether any contact matches the predicate.
	ExistsBy(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error)

	// FindByID returns the contact with the given id, or nil.
	FindByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Contact, error)

	// FindAll returns every contact.
	FindAll(ctx context.Context, db bun.IDB) ([]*Contact, error)

	// Insert persists a new contact.
	Insert(ctx context.Context, db bun.IDB, contact *Contact) error

	// Update persists changes to an existing contact.
	Update(ctx context.Context, db bun.IDB, contact *Contact) error

	// Delete removes a contact.
	Delete(ctx context.Context, db bun.IDB, contact *Contact) error
}
