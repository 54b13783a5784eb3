// Package competitionservice holds the business logic for competitions.
package competitionservice

import (
	"context"
	"log/slog"
	"strings"

	"github.com/uptrace/bun"

	competitiondb "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow"
)

// BadDateMessage is the fixed wire message for malformed date input.
const BadDateMessage = "Invalid date format. Expected format is yyyy-MM-dd."

// CompetitionDTO is the wire representation of a competition.
type CompetitionDTO struct {
	CompetitionName string           `json:"competitionName"`
	CompetitionDate sharedtypes.Date `json:"competitionDate"`
}

// EditCompetitionDTO carries the current identity plus the replacement values.
type EditCompetitionDTO struct {
	CompetitionName    string           `json:"competitionName"`
	CompetitionDate    sharedtypes.Date `json:"competitionDate"`
	NewCompetitionName string           `json:"newCompetitionName"`
	NewCompetitionDate sharedtypes.Date `json:"newCompetitionDate"`
}

// CompetitionService implements the competition business logic.
type CompetitionService struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
}

// NewCompetitionService creates a new CompetitionService.
func NewCompetitionService(u uow.UnitOfWork, logger *slog.Logger) *CompetitionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompetitionService{uow: u, logger: logger}
}

func identityConds(name string, date sharedtypes.Date) []validation.Cond {
	return []validation.Cond{
		{Column: "competition_name", Value: name},
		{Column: "competition_date", Value: date},
	}
}

// Save persists a new competition, failing Conflict when the (name, date)
// pair already exists.
func (s *CompetitionService) Save(ctx context.Context, dto CompetitionDTO) (CompetitionDTO, error) {
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		err := validation.Unique(ctx, db, s.uow.Competitions(),
			identityConds(dto.CompetitionName, dto.CompetitionDate),
			"Competition already exists")
		if err != nil {
			return err
		}
		return s.uow.Competitions().Insert(ctx, db, &competitiondb.Competition{
			CompetitionName: dto.CompetitionName,
			CompetitionDate: dto.CompetitionDate,
		})
	})
	if err != nil {
		return CompetitionDTO{}, err
	}
	s.logger.InfoContext(ctx, "competition created",
		slog.String("name", dto.CompetitionName),
		slog.String("date", dto.CompetitionDate.String()))
	return dto, nil
}

// Delete removes a competition by its (name, date) identity, returning the
// deleted record.
func (s *CompetitionService) Delete(ctx context.Context, dto CompetitionDTO) (CompetitionDTO, error) {
	var deleted CompetitionDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competition, err := validation.Exists[competitiondb.Competition](ctx, db, s.uow.Competitions(),
			identityConds(dto.CompetitionName, dto.CompetitionDate),
			"No such competition exists. Cannot delete.")
		if err != nil {
			return err
		}
		if err := s.uow.Competitions().Delete(ctx, db, competition); err != nil {
			return err
		}
		deleted = mapToDTO(competition)
		return nil
	})
	if err != nil {
		return CompetitionDTO{}, err
	}
	s.logger.InfoContext(ctx, "competition deleted", slog.String("name", dto.CompetitionName))
	return deleted, nil
}

// GetAll returns every competition, failing NotFound when there are none.
func (s *CompetitionService) GetAll(ctx context.Context) ([]CompetitionDTO, error) {
	var dtos []CompetitionDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitions, err := s.uow.Competitions().FindAll(ctx, db)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(competitions, ""); err != nil {
			return err
		}
		dtos = mapToDTOs(competitions)
		return nil
	})
	return dtos, err
}

// GetByName returns competitions whose name contains the substring,
// case-insensitively.
func (s *CompetitionService) GetByName(ctx context.Context, name string) ([]CompetitionDTO, error) {
	partial := strings.ToLower(name)

	var dtos []CompetitionDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitions, err := s.uow.Competitions().FindByNamePartial(ctx, db, partial)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(competitions, ""); err != nil {
			return err
		}
		dtos = mapToDTOs(competitions)
		return nil
	})
	return dtos, err
}

// GetByDate returns competitions held on the given ISO date.
func (s *CompetitionService) GetByDate(ctx context.Context, dateString string) ([]CompetitionDTO, error) {
	date, err := sharedtypes.ParseDate(dateString)
	if err != nil {
		return nil, apperrors.BadRequest(BadDateMessage)
	}

	var dtos []CompetitionDTO
	err = s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitions, err := s.uow.Competitions().FindByDate(ctx, db, date)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(competitions, ""); err != nil {
			return err
		}
		dtos = mapToDTOs(competitions)
		return nil
	})
	return dtos, err
}

// GetBetweenDates returns competitions held within the inclusive ISO range.
func (s *CompetitionService) GetBetweenDates(ctx context.Context, beginString, endString string) ([]CompetitionDTO, error) {
	begin, err := sharedtypes.ParseDate(beginString)
	if err != nil {
		return nil, apperrors.BadRequest(BadDateMessage)
	}
	end, err := sharedtypes.ParseDate(endString)
	if err != nil {
		return nil, apperrors.BadRequest(BadDateMessage)
	}

	var dtos []CompetitionDTO
	err = s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitions, err := s.uow.Competitions().FindBetweenDates(ctx, db, begin, end)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(competitions, ""); err != nil {
			return err
		}
		dtos = mapToDTOs(competitions)
		return nil
	})
	return dtos, err
}

// Update re-identifies a competition by its current (name, date) and
// replaces both fields. The returned DTO is built from the input new values;
// the mutation is synchronous within the same transaction, so the two agree.
func (s *CompetitionService) Update(ctx context.Context, dto EditCompetitionDTO) (CompetitionDTO, error) {
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competition, err := s.uow.Competitions().FindBy(ctx, db,
			identityConds(dto.CompetitionName, dto.CompetitionDate))
		if err != nil {
			return err
		}
		if err := validation.NotNil(competition, ""); err != nil {
			return err
		}
		competition.CompetitionName = dto.NewCompetitionName
		competition.CompetitionDate = dto.NewCompetitionDate
		return s.uow.Competitions().Update(ctx, db, competition)
	})
	if err != nil {
		return CompetitionDTO{}, err
	}
	return CompetitionDTO{
		CompetitionName: dto.NewCompetitionName,
		CompetitionDate: dto.NewCompetitionDate,
	}, nil
}

func mapToDTO(c *competitiondb.Competition) CompetitionDTO {
	return CompetitionDTO{CompetitionName: c.CompetitionName, CompetitionDate: c.CompetitionDate}
}

func mapToDTOs(competitions []*competitiondb.Competition) []CompetitionDTO {
	dtos := make([]CompetitionDTO, 0, len(competitions))
	for _, c := range competitions {
		dtos = append(dtos, mapToDTO(c))
	}
	return dtos
}
