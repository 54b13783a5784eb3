// Package contactservice holds the business logic for the contact book.
// Contacts are plain records with no cross-entity validation.
package contactservice

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	contactdb "github.com/trackside-club/trackmeet-backend/app/modules/contact/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow"
)

// ContactDTO is the wire representation of a contact. The name is the
// concatenated "First Middle Last" display form.
type ContactDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ContactEditDTO addresses a contact by id and carries the replacement
// fields.
type ContactEditDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	MiddleName string    `json:"middleName"`
	LastName   string    `json:"lastName"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
}

// ContactService implements the contact business logic.
type ContactService struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(u uow.UnitOfWork, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{uow: u, logger: logger}
}

// GetAll returns every contact.
func (s *ContactService) GetAll(ctx context.Context) ([]ContactDTO, error) {
	var dtos []ContactDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		contacts, err := s.uow.Contacts().FindAll(ctx, db)
		if err != nil {
			return err
		}
		dtos = make([]ContactDTO, 0, len(contacts))
		for _, c := range contacts {
			dtos = append(dtos, mapToDTO(c))
		}
		return nil
	})
	return dtos, err
}

// Save persists a new contact, splitting the display name into its parts.
func (s *ContactService) Save(ctx context.Context, dto ContactDTO) (ContactDTO, error) {
	first, middle, last := splitName(dto.Name)
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		return s.uow.Contacts().Insert(ctx, db, &contactdb.Contact{
			FirstName:  first,
			MiddleName: middle,
			LastName:   last,
			Phone:      dto.Phone,
			Email:      dto.Email,
		})
	})
	if err != nil {
		return ContactDTO{}, err
	}
	return dto, nil
}

// Delete removes a contact by id and returns it.
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) (ContactDTO, error) {
	var deleted ContactDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		contact, err := s.uow.Contacts().FindByID(ctx, db, id)
		if err != nil {
			return err
		}
		if err := validation.NotNil(contact, ""); err != nil {
			return err
		}
		if err := s.uow.Contacts().Delete(ctx, db, contact); err != nil {
			return err
		}
		deleted = mapToDTO(contact)
		return nil
	})
	if err != nil {
		return ContactDTO{}, err
	}
	s.logger.InfoContext(ctx, "contact deleted", slog.String("id", id.String()))
	return deleted, nil
}

// Update rewrites a contact addressed by id.
func (s *ContactService) Update(ctx context.Context, dto ContactEditDTO) (ContactDTO, error) {
	var updated ContactDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		contact, err := s.uow.Contacts().FindByID(ctx, db, dto.ID)
		if err != nil {
			return err
		}
		if err := validation.NotNil(contact, ""); err != nil {
			return err
		}
		contact.FirstName = dto.Name
		contact.MiddleName = dto.MiddleName
		contact.LastName = dto.LastName
		contact.Phone = dto.Phone
		contact.Email = dto.Email
		if err := s.uow.Contacts().Update(ctx, db, contact); err != nil {
			return err
		}
		updated = mapToDTO(contact)
		return nil
	})
	if err != nil {
		return ContactDTO{}, err
	}
	return updated, nil
}

// splitName breaks a "First Middle Last" display name into its parts. A two
// word name has no middle part; anything past the third word joins the last
// name.
func splitName(name string) (first, middle, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", "", ""
	case 1:
		return parts[0], "", ""
	case 2:
		return parts[0], "", parts[1]
	default:
		return parts[0], parts[1], strings.Join(parts[2:], " ")
	}
}

func mapToDTO(c *contactdb.Contact) ContactDTO {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return ContactDTO{
		Name:  strings.Join(parts, " "),
		Phone: c.Phone,
		Email: c.Email,
	}
}
