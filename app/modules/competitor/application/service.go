// Package competitorservice holds the business logic for competitors.
package competitorservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"

	competitordb "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories"
	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow"
)

// CompetitorDTO is the wire representation of a competitor.
type CompetitorDTO struct {
	FirstName     string   `json:"firstName"`
	MiddleName    string   `json:"middleName"`
	LastName      string   `json:"lastName"`
	MobilePhone   string   `json:"mobilePhone"`
	Email         string   `json:"email"`
	Nationalities []string `json:"nationalities"`
}

// EditCompetitorDTO carries the full current state plus the replacement
// values. The current fields double as an optimistic-concurrency check: the
// caller must prove they know the stored state before the edit applies.
type EditCompetitorDTO struct {
	FirstName        string   `json:"firstName"`
	MiddleName       string   `json:"middleName"`
	LastName         string   `json:"lastName"`
	MobilePhone      string   `json:"mobilePhone"`
	Email            string   `json:"email"`
	Nationalities    []string `json:"nationalities"`
	NewFirstName     string   `json:"newFirstName"`
	NewMiddleName    string   `json:"newMiddleName"`
	NewLastName      string   `json:"newLastName"`
	NewMobilePhone   string   `json:"newMobilePhone"`
	NewEmail         string   `json:"newEmail"`
	NewNationalities []string `json:"newNationalities"`
}

// CompetitorService implements the competitor business logic.
type CompetitorService struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
}

// NewCompetitorService creates a new CompetitorService.
func NewCompetitorService(u uow.UnitOfWork, logger *slog.Logger) *CompetitorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompetitorService{uow: u, logger: logger}
}

// GetAll returns every competitor with their nationality names resolved.
func (s *CompetitorService) GetAll(ctx context.Context) ([]CompetitorDTO, error) {
	var dtos []CompetitorDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitors, err := s.uow.Competitors().FindAll(ctx, db)
		if err != nil {
			return err
		}
		dtos = make([]CompetitorDTO, 0, len(competitors))
		for _, c := range competitors {
			dtos = append(dtos, mapToDTO(c))
		}
		return nil
	})
	return dtos, err
}

// Save persists a new competitor. Phone and email must be unused and every
// listed nationality must already exist; nationalities are validated, never
// auto-created.
func (s *CompetitorService) Save(ctx context.Context, dto CompetitorDTO) (CompetitorDTO, error) {
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		err := validation.Unique(ctx, db, s.uow.Competitors(),
			validation.By("phone", dto.MobilePhone),
			fmt.Sprintf("Competitor with phone number '%s' already exists", dto.MobilePhone))
		if err != nil {
			return err
		}
		err = validation.Unique(ctx, db, s.uow.Competitors(),
			validation.By("email", dto.Email),
			fmt.Sprintf("Competitor with email '%s' already exists", dto.Email))
		if err != nil {
			return err
		}

		nationalities, err := s.resolveNationalities(ctx, db, dto.Nationalities)
		if err != nil {
			return err
		}

		return s.uow.Competitors().Insert(ctx, db, &competitordb.Competitor{
			FirstName:     dto.FirstName,
			MiddleName:    dto.MiddleName,
			LastName:      dto.LastName,
			Phone:         dto.MobilePhone,
			Email:         dto.Email,
			Nationalities: nationalities,
		})
	})
	if err != nil {
		return CompetitorDTO{}, err
	}
	s.logger.InfoContext(ctx, "competitor created", slog.String("phone", dto.MobilePhone))
	return dto, nil
}

// Delete removes a competitor by phone. Competitors with recorded
// participations are kept; the participation rows must go first.
func (s *CompetitorService) Delete(ctx context.Context, phone string) (CompetitorDTO, error) {
	var deleted CompetitorDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitor, err := validation.Exists[competitordb.Competitor](ctx, db, s.uow.Competitors(),
			validation.By("phone", phone),
			"Incorrect information for deletion")
		if err != nil {
			return err
		}

		participates, err := s.uow.Participations().ExistsBy(ctx, db,
			validation.By("competitor_id", competitor.ID))
		if err != nil {
			return err
		}
		if participates {
			return apperrors.Conflict("Competitor has recorded participations and cannot be deleted")
		}

		if err := s.uow.Competitors().Delete(ctx, db, competitor); err != nil {
			return err
		}
		deleted = mapToDTO(competitor)
		return nil
	})
	if err != nil {
		return CompetitorDTO{}, err
	}
	s.logger.InfoContext(ctx, "competitor deleted", slog.String("phone", phone))
	return deleted, nil
}

// Update re-identifies a competitor by the current phone, verifies the
// caller's view of the stored state field-by-field, then applies the new
// values and replaces the nationality set wholesale.
func (s *CompetitorService) Update(ctx context.Context, dto EditCompetitorDTO) (CompetitorDTO, error) {
	var updated CompetitorDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitor, err := validation.Exists[competitordb.Competitor](ctx, db, s.uow.Competitors(),
			validation.By("phone", dto.MobilePhone),
			"Cannot update competitor that does not exist")
		if err != nil {
			return err
		}

		if competitor.FirstName != dto.FirstName ||
			competitor.MiddleName != dto.MiddleName ||
			competitor.LastName != dto.LastName ||
			competitor.Email != dto.Email {
			return apperrors.NotFound("Some or all of the properties of the competitor do not match")
		}

		nationalities, err := s.resolveNationalities(ctx, db, dto.NewNationalities)
		if err != nil {
			return err
		}

		competitor.FirstName = dto.NewFirstName
		competitor.MiddleName = dto.NewMiddleName
		competitor.LastName = dto.NewLastName
		competitor.Phone = dto.NewMobilePhone
		competitor.Email = dto.NewEmail
		if err := s.uow.Competitors().Update(ctx, db, competitor); err != nil {
			return err
		}
		if err := s.uow.Competitors().ReplaceNationalities(ctx, db, competitor, nationalities); err != nil {
			return err
		}
		updated = mapToDTO(competitor)
		return nil
	})
	if err != nil {
		return CompetitorDTO{}, err
	}
	return updated, nil
}

// resolveNationalities maps country names to stored nationalities, failing
// NotFound on the first name that does not exist.
func (s *CompetitorService) resolveNationalities(ctx context.Context, db bun.IDB, names []string) ([]*nationalitydb.Nationality, error) {
	nationalities := make([]*nationalitydb.Nationality, 0, len(names))
	for _, name := range names {
		nationality, err := validation.Exists[nationalitydb.Nationality](ctx, db, s.uow.Nationalities(),
			validation.By("country_name", name),
			fmt.Sprintf("No such nationality: '%s'", name))
		if err != nil {
			return nil, err
		}
		nationalities = append(nationalities, nationality)
	}
	return nationalities, nil
}

func mapToDTO(c *competitordb.Competitor) CompetitorDTO {
	return CompetitorDTO{
		FirstName:     c.FirstName,
		MiddleName:    c.MiddleName,
		LastName:      c.LastName,
		MobilePhone:   c.Phone,
		Email:         c.Email,
		Nationalities: c.CountryNames(),
	}
}
