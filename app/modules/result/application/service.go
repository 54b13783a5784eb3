// Package resultservice holds the business logic for results.
//
// Results are owned by participations: the HTTP create endpoint is a guard
// rail that always rejects, and new rows only appear through the
// participation service.
package resultservice

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"

	resultdb "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow"
)

// ResultDTO is the wire representation of a result.
type ResultDTO struct {
	Seconds  float32 `json:"seconds"`
	Finished bool    `json:"finished"`
	Place    string  `json:"place"`
}

// EditResultDTO carries the current triple plus the replacement values.
type EditResultDTO struct {
	Seconds     float32 `json:"seconds"`
	Finished    bool    `json:"finished"`
	Place       string  `json:"place"`
	NewSeconds  float32 `json:"newSeconds"`
	NewFinished bool    `json:"newFinished"`
	NewPlace    string  `json:"newPlace"`
}

// ResultService implements the result business logic.
type ResultService struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(u uow.UnitOfWork, logger *slog.Logger) *ResultService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResultService{uow: u, logger: logger}
}

func tripleConds(seconds float32, finished bool, place string) []validation.Cond {
	return []validation.Cond{
		{Column: "seconds", Value: seconds},
		{Column: "finished", Value: finished},
		{Column: "place", Value: place},
	}
}

// GetAll returns every result, failing NotFound when there are none.
func (s *ResultService) GetAll(ctx context.Context) ([]ResultDTO, error) {
	var dtos []ResultDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		results, err := s.uow.Results().FindAll(ctx, db)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(results, ""); err != nil {
			return err
		}
		dtos = mapToDTOs(results)
		return nil
	})
	return dtos, err
}

// Save always rejects: results exist only as part of a participation.
func (s *ResultService) Save(ctx context.Context, dto ResultDTO) (ResultDTO, error) {
	return ResultDTO{}, apperrors.ConflictWithKind("Internal Server Error",
		"Results can only be created through the participation endpoint")
}

// Update re-identifies a result by its exact current triple and replaces it.
func (s *ResultService) Update(ctx context.Context, dto EditResultDTO) (ResultDTO, error) {
	var updated ResultDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		result, err := validation.Exists[resultdb.Result](ctx, db, s.uow.Results(),
			tripleConds(dto.Seconds, dto.Finished, dto.Place),
			"Such result does not exist")
		if err != nil {
			return err
		}
		result.Seconds = resultdb.RoundSeconds(dto.NewSeconds)
		result.Finished = dto.NewFinished
		result.Place = dto.NewPlace
		if err := s.uow.Results().Update(ctx, db, result); err != nil {
			return err
		}
		updated = mapToDTO(result)
		return nil
	})
	if err != nil {
		return ResultDTO{}, err
	}
	return updated, nil
}

// Delete removes a result identified by its exact current triple.
func (s *ResultService) Delete(ctx context.Context, dto ResultDTO) (ResultDTO, error) {
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		result, err := validation.Exists[resultdb.Result](ctx, db, s.uow.Results(),
			tripleConds(dto.Seconds, dto.Finished, dto.Place),
			"Such result does not exist")
		if err != nil {
			return err
		}
		return s.uow.Results().Delete(ctx, db, result)
	})
	if err != nil {
		return ResultDTO{}, err
	}
	s.logger.InfoContext(ctx, "result deleted", slog.String("place", dto.Place))
	return dto, nil
}

func mapToDTO(r *resultdb.Result) ResultDTO {
	return ResultDTO{Seconds: r.Seconds, Finished: r.Finished, Place: r.Place}
}

func mapToDTOs(results []*resultdb.Result) []ResultDTO {
	dtos := make([]ResultDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, mapToDTO(r))
	}
	return dtos
}
