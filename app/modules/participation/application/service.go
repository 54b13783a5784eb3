// Package participationservice holds the business logic tying competitors,
// competitions, events and results together. Every mutation here touches
// several tables, so each method is one transaction end to end.
package participationservice

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	competitiondb "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories"
	competitordb "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories"
	eventdb "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories"
	participationdb "github.com/trackside-club/trackmeet-backend/app/modules/participation/infrastructure/repositories"
	resultdb "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow"
)

const (
	msgCompetitorNotFound  = "Competitor not found, create competitor through competitors endpoint first."
	msgCompetitionNotFound = "Competition not found, create competition through competitions endpoint first."
	msgEventNotFound       = "Event not found, create event through events endpoint first."
	msgNewEventNotFound    = "The new event you are trying to set does not exist. Create event in events endpoint first."
	msgResultsMismatch     = "The results of this competitor do not match the ones entered."
)

// ParticipationDTO is the flattened wire representation of one
// participation: competitor, competition, event and result in a single
// record.
type ParticipationDTO struct {
	FirstName       string           `json:"firstName"`
	MiddleName      string           `json:"middleName"`
	LastName        string           `json:"lastName"`
	MobilePhone     string           `json:"mobilePhone"`
	CompetitionName string           `json:"competitionName"`
	CompetitionDate sharedtypes.Date `json:"competitionDate"`
	Distance        decimal.Decimal  `json:"distance"`
	EventType       string           `json:"eventType"`
	Seconds         float32          `json:"seconds"`
	Finished        bool             `json:"finished"`
	Place           string           `json:"place"`
}

// EditParticipationDTO carries the identity of an existing participation
// (everything up to Place) plus the replacement event and result values.
type EditParticipationDTO struct {
	FirstName       string           `json:"firstName"`
	MiddleName      string           `json:"middleName"`
	LastName        string           `json:"lastName"`
	MobilePhone     string           `json:"mobilePhone"`
	CompetitionName string           `json:"competitionName"`
	CompetitionDate sharedtypes.Date `json:"competitionDate"`
	Distance        decimal.Decimal  `json:"distance"`
	EventType       string           `json:"eventType"`
	Seconds         float32          `json:"seconds"`
	Finished        bool             `json:"finished"`
	Place           string           `json:"place"`
	NewDistance     decimal.Decimal  `json:"newDistance"`
	NewEventType    string           `json:"newEventType"`
	NewSeconds      float32          `json:"newSeconds"`
	NewFinished     bool             `json:"newFinished"`
	NewPlace        string           `json:"newPlace"`
}

// ParticipationService implements the participation business logic.
type ParticipationService struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
}

// NewParticipationService creates a new ParticipationService.
func NewParticipationService(u uow.UnitOfWork, logger *slog.Logger) *ParticipationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParticipationService{uow: u, logger: logger}
}

// Save records a participation. All three collaborators must already exist;
// nothing is written until all of them resolve, so a failed create leaves no
// orphan result behind. The result row is created here, never through the
// result endpoint.
func (s *ParticipationService) Save(ctx context.Context, dto ParticipationDTO) (ParticipationDTO, error) {
	var saved ParticipationDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitor, competition, event, err := s.resolveCollaborators(ctx, db,
			dto.MobilePhone, dto.CompetitionName, dto.CompetitionDate, dto.Distance)
		if err != nil {
			return err
		}

		result := resultdb.NewResult(dto.Seconds, dto.Finished, dto.Place)
		if err := s.uow.Results().Insert(ctx, db, result); err != nil {
			return err
		}

		participation := &participationdb.Participation{
			CompetitorID:  competitor.ID,
			CompetitionID: competition.ID,
			EventID:       event.ID,
			ResultID:      result.ID,
			Competitor:    competitor,
			Competition:   competition,
			Event:         event,
			Result:        result,
		}
		if err := s.uow.Participations().Insert(ctx, db, participation); err != nil {
			return err
		}
		saved = mapToDTO(participation)
		return nil
	})
	if err != nil {
		return ParticipationDTO{}, err
	}
	s.logger.InfoContext(ctx, "participation created",
		slog.String("phone", dto.MobilePhone),
		slog.String("competition", dto.CompetitionName))
	return saved, nil
}

// Delete removes the participation identified by the
// (competitor, competition, event) triple, together with the result it
// owns. The result has no life of its own outside the participation.
func (s *ParticipationService) Delete(ctx context.Context, dto ParticipationDTO) (ParticipationDTO, error) {
	var deleted ParticipationDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		participation, err := s.findByIdentity(ctx, db,
			dto.MobilePhone, dto.CompetitionName, dto.CompetitionDate, dto.Distance)
		if err != nil {
			return err
		}

		if err := s.uow.Participations().Delete(ctx, db, participation); err != nil {
			return err
		}
		if err := s.uow.Results().Delete(ctx, db, participation.Result); err != nil {
			return err
		}
		deleted = mapToDTO(participation)
		return nil
	})
	if err != nil {
		return ParticipationDTO{}, err
	}
	s.logger.InfoContext(ctx, "participation deleted", slog.String("phone", dto.MobilePhone))
	return deleted, nil
}

// Update moves a participation to a new event and replaces its result. The
// caller's view of the current result must match the stored one field by
// field before anything changes.
func (s *ParticipationService) Update(ctx context.Context, dto EditParticipationDTO) (ParticipationDTO, error) {
	var updated ParticipationDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitor, competition, event, err := s.resolveCollaborators(ctx, db,
			dto.MobilePhone, dto.CompetitionName, dto.CompetitionDate, dto.Distance)
		if err != nil {
			return err
		}

		participation, err := s.uow.Participations().FindByTriple(ctx, db,
			competitor.ID, competition.ID, event.ID)
		if err != nil {
			return err
		}
		if err := validation.NotNil(participation, ""); err != nil {
			return err
		}

		if !participation.Result.Matches(dto.Seconds, dto.Finished, dto.Place) {
			return apperrors.ConflictWithKind("Not Found", msgResultsMismatch)
		}

		newEvent, err := validation.Exists[eventdb.Event](ctx, db, s.uow.Events(),
			[]validation.Cond{
				{Column: "distance", Value: eventdb.RoundDistance(dto.NewDistance)},
				{Column: "event_type", Value: dto.NewEventType},
			},
			msgNewEventNotFound)
		if err != nil {
			return err
		}

		oldResult := participation.Result
		newResult := resultdb.NewResult(dto.NewSeconds, dto.NewFinished, dto.NewPlace)
		if err := s.uow.Results().Insert(ctx, db, newResult); err != nil {
			return err
		}

		participation.EventID = newEvent.ID
		participation.ResultID = newResult.ID
		if err := s.uow.Participations().Update(ctx, db, participation); err != nil {
			return err
		}
		// The old result row can only go once nothing references it.
		if err := s.uow.Results().Delete(ctx, db, oldResult); err != nil {
			return err
		}

		participation.Event = newEvent
		participation.Result = newResult
		updated = mapToDTO(participation)
		return nil
	})
	if err != nil {
		return ParticipationDTO{}, err
	}
	return updated, nil
}

// FindAll returns every participation, flattened.
func (s *ParticipationService) FindAll(ctx context.Context) ([]ParticipationDTO, error) {
	var dtos []ParticipationDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		participations, err := s.uow.Participations().FindAll(ctx, db)
		if err != nil {
			return err
		}
		dtos = mapAll(participations)
		return validation.NonEmpty(dtos, "")
	})
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// FindByNames returns participations of competitors whose names contain the
// given fragments. The two lookup stages fail with distinct messages so the
// caller can tell "no such competitor" from "competitor never raced".
func (s *ParticipationService) FindByNames(ctx context.Context, firstName, middleName, lastName string) ([]ParticipationDTO, error) {
	var dtos []ParticipationDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitors, err := s.uow.Competitors().FindByNamesPartial(ctx, db,
			strings.ToLower(firstName), strings.ToLower(middleName), strings.ToLower(lastName))
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(competitors, "No competitors with these names"); err != nil {
			return err
		}

		for _, competitor := range competitors {
			participations, err := s.uow.Participations().FindByCompetitor(ctx, db, competitor.ID)
			if err != nil {
				return err
			}
			dtos = append(dtos, mapAll(participations)...)
		}
		return validation.NonEmpty(dtos, "No results from participation of competitors with these names")
	})
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// FindByCompetition returns participations in competitions matching the name
// fragment on the given date.
func (s *ParticipationService) FindByCompetition(ctx context.Context, competitionName, competitionDate string) ([]ParticipationDTO, error) {
	date, err := sharedtypes.ParseDate(competitionDate)
	if err != nil {
		return nil, apperrors.BadRequest("Invalid date format. Expected format is yyyy-MM-dd.")
	}

	var dtos []ParticipationDTO
	err = s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		competitions, err := s.uow.Competitions().FindByNamePartialAndDate(ctx, db,
			strings.ToLower(competitionName), date)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(competitions, "No competitions with this name"); err != nil {
			return err
		}

		for _, competition := range competitions {
			participations, err := s.uow.Participations().FindByCompetition(ctx, db, competition.ID)
			if err != nil {
				return err
			}
			dtos = append(dtos, mapAll(participations)...)
		}
		return validation.NonEmpty(dtos, "No results for participation on this competition")
	})
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// FindByDistance returns participations in the event of the given distance.
func (s *ParticipationService) FindByDistance(ctx context.Context, distance decimal.Decimal) ([]ParticipationDTO, error) {
	var dtos []ParticipationDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		event, err := validation.Exists[eventdb.Event](ctx, db, s.uow.Events(),
			validation.By("distance", eventdb.RoundDistance(distance)),
			"No events of this distance")
		if err != nil {
			return err
		}

		participations, err := s.uow.Participations().FindByEvent(ctx, db, event.ID)
		if err != nil {
			return err
		}
		dtos = mapAll(participations)
		return validation.NonEmpty(dtos, "No results for participation in this event")
	})
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// FindByTime returns participations whose result has the exact elapsed time.
func (s *ParticipationService) FindByTime(ctx context.Context, seconds float32) ([]ParticipationDTO, error) {
	var dtos []ParticipationDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		results, err := s.uow.Results().FindBySeconds(ctx, db, resultdb.RoundSeconds(seconds))
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(results, "No results with this time"); err != nil {
			return err
		}

		for _, result := range results {
			participations, err := s.uow.Participations().FindByResult(ctx, db, result.ID)
			if err != nil {
				return err
			}
			dtos = append(dtos, mapAll(participations)...)
		}
		return validation.NonEmpty(dtos, "No results for participation with these finishing times")
	})
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// FindByPlacement returns participations whose result place label contains
// the fragment.
func (s *ParticipationService) FindByPlacement(ctx context.Context, placement string) ([]ParticipationDTO, error) {
	var dtos []ParticipationDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		results, err := s.uow.Results().FindByPlacePartial(ctx, db, strings.ToLower(placement))
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(results, "No results with this placement"); err != nil {
			return err
		}

		for _, result := range results {
			participations, err := s.uow.Participations().FindByResult(ctx, db, result.ID)
			if err != nil {
				return err
			}
			dtos = append(dtos, mapAll(participations)...)
		}
		return validation.NonEmpty(dtos, "No results for participation with this placement")
	})
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// resolveCollaborators loads the three entities a participation hangs off,
// failing NotFound with a per-entity message pointing at the endpoint that
// creates it.
func (s *ParticipationService) resolveCollaborators(ctx context.Context, db bun.IDB, phone, competitionName string, competitionDate sharedtypes.Date, distance decimal.Decimal) (*competitordb.Competitor, *competitiondb.Competition, *eventdb.Event, error) {
	competitor, err := validation.Exists[competitordb.Competitor](ctx, db, s.uow.Competitors(),
		validation.By("phone", phone), msgCompetitorNotFound)
	if err != nil {
		return nil, nil, nil, err
	}
	competition, err := validation.Exists[competitiondb.Competition](ctx, db, s.uow.Competitions(),
		[]validation.Cond{
			{Column: "competition_name", Value: competitionName},
			{Column: "competition_date", Value: competitionDate},
		}, msgCompetitionNotFound)
	if err != nil {
		return nil, nil, nil, err
	}
	event, err := validation.Exists[eventdb.Event](ctx, db, s.uow.Events(),
		validation.By("distance", eventdb.RoundDistance(distance)), msgEventNotFound)
	if err != nil {
		return nil, nil, nil, err
	}
	return competitor, competition, event, nil
}

// findByIdentity resolves the triple and returns the matching participation
// with its graph loaded. Any gap along the way is a plain not-found.
func (s *ParticipationService) findByIdentity(ctx context.Context, db bun.IDB, phone, competitionName string, competitionDate sharedtypes.Date, distance decimal.Decimal) (*participationdb.Participation, error) {
	competitor, err := s.uow.Competitors().FindBy(ctx, db, validation.By("phone", phone))
	if err != nil {
		return nil, err
	}
	competition, err := s.uow.Competitions().FindBy(ctx, db, []validation.Cond{
		{Column: "competition_name", Value: competitionName},
		{Column: "competition_date", Value: competitionDate},
	})
	if err != nil {
		return nil, err
	}
	event, err := s.uow.Events().FindBy(ctx, db, validation.By("distance", eventdb.RoundDistance(distance)))
	if err != nil {
		return nil, err
	}
	if competitor == nil || competition == nil || event == nil {
		return nil, apperrors.NotFound("")
	}

	participation, err := s.uow.Participations().FindByTriple(ctx, db,
		competitor.ID, competition.ID, event.ID)
	if err != nil {
		return nil, err
	}
	if err := validation.NotNil(participation, ""); err != nil {
		return nil, err
	}
	return participation, nil
}

func mapAll(participations []*participationdb.Participation) []ParticipationDTO {
	dtos := make([]ParticipationDTO, 0, len(participations))
	for _, p := range participations {
		dtos = append(dtos, mapToDTO(p))
	}
	return dtos
}

func mapToDTO(p *participationdb.Participation) ParticipationDTO {
	return ParticipationDTO{
		FirstName:       p.Competitor.FirstName,
		MiddleName:      p.Competitor.MiddleName,
		LastName:        p.Competitor.LastName,
		MobilePhone:     p.Competitor.Phone,
		CompetitionName: p.Competition.CompetitionName,
		CompetitionDate: p.Competition.CompetitionDate,
		Distance:        p.Event.Distance,
		EventType:       p.Event.EventType,
		Seconds:         p.Result.Seconds,
		Finished:        p.Result.Finished,
		Place:           p.Result.Place,
	}
}
