// Package nationalityservice holds the business logic for nationalities.
package nationalityservice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/uptrace/bun"

	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow"
)

// NationalityDTO is the wire representation of a nationality.
type NationalityDTO struct {
	CountryName string `json:"countryName"`
}

// EditNationalityDTO renames a nationality.
type EditNationalityDTO struct {
	CurrentNationalityName string `json:"currentNationalityName"`
	NewNationalityName     string `json:"newNationalityName"`
}

// NationalityService implements the nationality business logic.
type NationalityService struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
}

// NewNationalityService creates a new NationalityService.
func NewNationalityService(u uow.UnitOfWork, logger *slog.Logger) *NationalityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NationalityService{uow: u, logger: logger}
}

// GetAll returns every nationality, failing NotFound when there are none.
func (s *NationalityService) GetAll(ctx context.Context) ([]NationalityDTO, error) {
	var dtos []NationalityDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		nationalities, err := s.uow.Nationalities().FindAll(ctx, db)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(nationalities, ""); err != nil {
			return err
		}
		dtos = mapToDTOs(nationalities)
		return nil
	})
	return dtos, err
}

// GetByPartialName returns nationalities whose country name contains the
// substring, case-insensitively.
func (s *NationalityService) GetByPartialName(ctx context.Context, countryName string) ([]NationalityDTO, error) {
	partial := strings.ToLower(countryName)

	var dtos []NationalityDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		nationalities, err := s.uow.Nationalities().FindByPartialName(ctx, db, partial)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(nationalities, "Cannot find entities"); err != nil {
			return err
		}
		dtos = mapToDTOs(nationalities)
		return nil
	})
	return dtos, err
}

// Save persists a new nationality, failing Conflict when the country name
// is already taken.
func (s *NationalityService) Save(ctx context.Context, dto NationalityDTO) (NationalityDTO, error) {
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		err := validation.Unique(ctx, db, s.uow.Nationalities(),
			validation.By("country_name", dto.CountryName),
			fmt.Sprintf("The country '%s' already exists.", dto.CountryName))
		if err != nil {
			return err
		}
		return s.uow.Nationalities().Insert(ctx, db, &nationalitydb.Nationality{CountryName: dto.CountryName})
	})
	if err != nil {
		return NationalityDTO{}, err
	}
	s.logger.InfoContext(ctx, "nationality created", slog.String("country", dto.CountryName))
	return dto, nil
}

// Delete removes a nationality by country name, returning the deleted record.
func (s *NationalityService) Delete(ctx context.Context, countryName string) (NationalityDTO, error) {
	var dto NationalityDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		nationality, err := validation.Exists[nationalitydb.Nationality](ctx, db, s.uow.Nationalities(),
			validation.By("country_name", countryName),
			fmt.Sprintf("The country '%s' does not exist and therefore cannot be deleted.", countryName))
		if err != nil {
			return err
		}
		if err := s.uow.Nationalities().Delete(ctx, db, nationality); err != nil {
			return err
		}
		dto = NationalityDTO{CountryName: nationality.CountryName}
		return nil
	})
	if err != nil {
		return NationalityDTO{}, err
	}
	s.logger.InfoContext(ctx, "nationality deleted", slog.String("country", countryName))
	return dto, nil
}

// Update renames a nationality. The lookup intentionally bypasses the
// generic existence helper: a missing current name is reported as a plain
// not-found, preserving the distinct failure path of the original endpoint.
func (s *NationalityService) Update(ctx context.Context, dto EditNationalityDTO) (NationalityDTO, error) {
	var updated NationalityDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		nationality, err := s.uow.Nationalities().FindBy(ctx, db,
			validation.By("country_name", dto.CurrentNationalityName))
		if err != nil {
			return err
		}
		if nationality == nil {
			return apperrors.NotFound("Nationality not found: " + dto.CurrentNationalityName)
		}
		nationality.CountryName = dto.NewNationalityName
		if err := s.uow.Nationalities().Update(ctx, db, nationality); err != nil {
			return err
		}
		updated = NationalityDTO{CountryName: nationality.CountryName}
		return nil
	})
	if err != nil {
		return NationalityDTO{}, err
	}
	return updated, nil
}

func mapToDTOs(nationalities []*nationalitydb.Nationality) []NationalityDTO {
	dtos := make([]NationalityDTO, 0, len(nationalities))
	for _, n := range nationalities {
		dtos = append(dtos, NationalityDTO{CountryName: n.CountryName})
	}
	return dtos
}
