package participationservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	competitiondb "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories"
	competitordb "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories"
	eventdb "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories"
	participationdb "github.com/trackside-club/trackmeet-backend/app/modules/participation/infrastructure/repositories"
	resultdb "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow/uowtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var cupDate = sharedtypes.NewDate(2024, time.October, 10)

type graph struct {
	competitor  *competitordb.Competitor
	competition *competitiondb.Competition
	event       *eventdb.Event
	result      *resultdb.Result
}

func newGraph() graph {
	return graph{
		competitor: &competitordb.Competitor{
			ID:        uuid.New(),
			FirstName: "Ivan",
			LastName:  "Ivanov",
			Phone:     "0888123456",
			Email:     "ivan@example.com",
		},
		competition: &competitiondb.Competition{
			ID:              uuid.New(),
			CompetitionName: "Bulgarian Cup I 2024",
			CompetitionDate: cupDate,
		},
		event:  &eventdb.Event{ID: uuid.New(), Distance: decimal.RequireFromString("100"), EventType: "sprint"},
		result: &resultdb.Result{ID: uuid.New(), Seconds: 10.5, Finished: true, Place: "1"},
	}
}

// wireCollaborators makes the fake repos resolve the graph's competitor,
// competition and event by their business keys.
func wireCollaborators(fake *uowtest.Fake, g graph) {
	fake.CompetitorRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*competitordb.Competitor, error) {
		if conds[0].Value == g.competitor.Phone {
			return g.competitor, nil
		}
		return nil, nil
	}
	fake.CompetitionRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*competitiondb.Competition, error) {
		if conds[0].Value == g.competition.CompetitionName {
			return g.competition, nil
		}
		return nil, nil
	}
	fake.EventRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*eventdb.Event, error) {
		if conds[0].Value.(decimal.Decimal).Equal(g.event.Distance) {
			return g.event, nil
		}
		return nil, nil
	}
}

func (g graph) participation() *participationdb.Participation {
	return &participationdb.Participation{
		ID:            uuid.New(),
		CompetitorID:  g.competitor.ID,
		CompetitionID: g.competition.ID,
		EventID:       g.event.ID,
		ResultID:      g.result.ID,
		Competitor:    g.competitor,
		Competition:   g.competition,
		Event:         g.event,
		Result:        g.result,
	}
}

func saveDTO(g graph) ParticipationDTO {
	return ParticipationDTO{
		FirstName:       g.competitor.FirstName,
		LastName:        g.competitor.LastName,
		MobilePhone:     g.competitor.Phone,
		CompetitionName: g.competition.CompetitionName,
		CompetitionDate: g.competition.CompetitionDate,
		Distance:        g.event.Distance,
		EventType:       g.event.EventType,
		Seconds:         10.5,
		Finished:        true,
		Place:           "1",
	}
}

func TestParticipationSave(t *testing.T) {
	t.Run("creates the owned result and the link row", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		var insertedResult *resultdb.Result
		fake.ResultRepo.InsertFn = func(ctx context.Context, db bun.IDB, r *resultdb.Result) error {
			r.ID = uuid.New()
			insertedResult = r
			return nil
		}
		var insertedParticipation *participationdb.Participation
		fake.ParticipationRepo.InsertFn = func(ctx context.Context, db bun.IDB, p *participationdb.Participation) error {
			insertedParticipation = p
			return nil
		}
		svc := NewParticipationService(fake, testLogger())

		got, err := svc.Save(context.Background(), saveDTO(g))
		require.NoError(t, err)
		require.NotNil(t, insertedResult)
		require.NotNil(t, insertedParticipation)
		assert.Equal(t, g.competitor.ID, insertedParticipation.CompetitorID)
		assert.Equal(t, insertedResult.ID, insertedParticipation.ResultID)
		assert.Equal(t, "Ivan", got.FirstName)
		assert.Equal(t, "1", got.Place)
	})

	t.Run("missing competitor writes nothing", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		resultInserted := false
		fake.ResultRepo.InsertFn = func(ctx context.Context, db bun.IDB, r *resultdb.Result) error {
			resultInserted = true
			return nil
		}
		svc := NewParticipationService(fake, testLogger())

		dto := saveDTO(g)
		dto.MobilePhone = "0000000000"
		_, err := svc.Save(context.Background(), dto)
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "Competitor not found, create competitor through competitors endpoint first.", appErr.Details)
		assert.False(t, resultInserted)
	})

	t.Run("missing competition", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		svc := NewParticipationService(fake, testLogger())

		dto := saveDTO(g)
		dto.CompetitionName = "Unknown Cup"
		_, err := svc.Save(context.Background(), dto)
		require.Error(t, err)
		assert.Equal(t, "Competition not found, create competition through competitions endpoint first.", apperrors.From(err).Details)
	})

	t.Run("missing event", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		svc := NewParticipationService(fake, testLogger())

		dto := saveDTO(g)
		dto.Distance = decimal.RequireFromString("999")
		_, err := svc.Save(context.Background(), dto)
		require.Error(t, err)
		assert.Equal(t, "Event not found, create event through events endpoint first.", apperrors.From(err).Details)
	})
}

func TestParticipationDelete(t *testing.T) {
	t.Run("removes the participation and its result", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		p := g.participation()
		fake.ParticipationRepo.FindByTripleFn = func(ctx context.Context, db bun.IDB, competitorID, competitionID, eventID uuid.UUID) (*participationdb.Participation, error) {
			return p, nil
		}
		participationDeleted := false
		fake.ParticipationRepo.DeleteFn = func(ctx context.Context, db bun.IDB, got *participationdb.Participation) error {
			participationDeleted = true
			return nil
		}
		var deletedResult *resultdb.Result
		fake.ResultRepo.DeleteFn = func(ctx context.Context, db bun.IDB, r *resultdb.Result) error {
			deletedResult = r
			return nil
		}
		svc := NewParticipationService(fake, testLogger())

		got, err := svc.Delete(context.Background(), saveDTO(g))
		require.NoError(t, err)
		assert.True(t, participationDeleted)
		require.NotNil(t, deletedResult)
		assert.Equal(t, g.result.ID, deletedResult.ID)
		assert.Equal(t, "0888123456", got.MobilePhone)
	})

	t.Run("any identity gap is a plain not-found", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		svc := NewParticipationService(fake, testLogger())

		dto := saveDTO(g)
		dto.MobilePhone = "0000000000"
		_, err := svc.Delete(context.Background(), dto)
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, apperrors.DefaultNotFoundMessage, appErr.Details)
	})
}

func TestParticipationUpdate(t *testing.T) {
	editDTO := func(g graph) EditParticipationDTO {
		return EditParticipationDTO{
			FirstName:       g.competitor.FirstName,
			LastName:        g.competitor.LastName,
			MobilePhone:     g.competitor.Phone,
			CompetitionName: g.competition.CompetitionName,
			CompetitionDate: g.competition.CompetitionDate,
			Distance:        g.event.Distance,
			EventType:       g.event.EventType,
			Seconds:         10.5,
			Finished:        true,
			Place:           "1",
			NewDistance:     decimal.RequireFromString("200"),
			NewEventType:    "sprint",
			NewSeconds:      21.34567,
			NewFinished:     true,
			NewPlace:        "2",
		}
	}

	t.Run("result mismatch leaves everything untouched", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		p := g.participation()
		fake.ParticipationRepo.FindByTripleFn = func(ctx context.Context, db bun.IDB, competitorID, competitionID, eventID uuid.UUID) (*participationdb.Participation, error) {
			return p, nil
		}
		touched := false
		fake.ResultRepo.InsertFn = func(ctx context.Context, db bun.IDB, r *resultdb.Result) error {
			touched = true
			return nil
		}
		fake.ParticipationRepo.UpdateFn = func(ctx context.Context, db bun.IDB, got *participationdb.Participation) error {
			touched = true
			return nil
		}
		svc := NewParticipationService(fake, testLogger())

		dto := editDTO(g)
		dto.Seconds = 99.9
		_, err := svc.Update(context.Background(), dto)
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 409, appErr.Status)
		assert.Equal(t, "Not Found", appErr.Kind)
		assert.Equal(t, "The results of this competitor do not match the ones entered.", appErr.Details)
		assert.False(t, touched)
	})

	t.Run("new event is looked up by the new pair", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		newEvent := &eventdb.Event{ID: uuid.New(), Distance: decimal.RequireFromString("200"), EventType: "sprint"}
		baseFindBy := fake.EventRepo.FindByFn
		fake.EventRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*eventdb.Event, error) {
			if conds[0].Value.(decimal.Decimal).Equal(newEvent.Distance) {
				require.Len(t, conds, 2)
				assert.Equal(t, "sprint", conds[1].Value)
				return newEvent, nil
			}
			return baseFindBy(ctx, db, conds)
		}
		p := g.participation()
		fake.ParticipationRepo.FindByTripleFn = func(ctx context.Context, db bun.IDB, competitorID, competitionID, eventID uuid.UUID) (*participationdb.Participation, error) {
			return p, nil
		}
		var order []string
		var insertedResult *resultdb.Result
		fake.ResultRepo.InsertFn = func(ctx context.Context, db bun.IDB, r *resultdb.Result) error {
			r.ID = uuid.New()
			insertedResult = r
			order = append(order, "insert result")
			return nil
		}
		fake.ParticipationRepo.UpdateFn = func(ctx context.Context, db bun.IDB, got *participationdb.Participation) error {
			order = append(order, "update participation")
			return nil
		}
		var deletedResult *resultdb.Result
		fake.ResultRepo.DeleteFn = func(ctx context.Context, db bun.IDB, r *resultdb.Result) error {
			deletedResult = r
			order = append(order, "delete result")
			return nil
		}
		svc := NewParticipationService(fake, testLogger())

		got, err := svc.Update(context.Background(), editDTO(g))
		require.NoError(t, err)
		assert.Equal(t, []string{"insert result", "update participation", "delete result"}, order)
		assert.Equal(t, newEvent.ID, p.EventID)
		require.NotNil(t, insertedResult)
		assert.Equal(t, insertedResult.ID, p.ResultID)
		require.NotNil(t, deletedResult)
		assert.Equal(t, g.result.ID, deletedResult.ID)
		assert.InDelta(t, 21.346, got.Seconds, 0.0001)
		assert.Equal(t, "2", got.Place)
		assert.Equal(t, "200", got.Distance.String())
	})

	t.Run("unknown new event", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		wireCollaborators(fake, g)
		p := g.participation()
		fake.ParticipationRepo.FindByTripleFn = func(ctx context.Context, db bun.IDB, competitorID, competitionID, eventID uuid.UUID) (*participationdb.Participation, error) {
			return p, nil
		}
		svc := NewParticipationService(fake, testLogger())

		dto := editDTO(g)
		dto.NewDistance = decimal.RequireFromString("999")
		_, err := svc.Update(context.Background(), dto)
		require.Error(t, err)
		assert.Equal(t,
			"The new event you are trying to set does not exist. Create event in events endpoint first.",
			apperrors.From(err).Details)
	})
}

func TestParticipationFindByNames(t *testing.T) {
	t.Run("no matching competitors", func(t *testing.T) {
		fake := uowtest.New()
		var seenFirst string
		fake.CompetitorRepo.FindByNamesPartialFn = func(ctx context.Context, db bun.IDB, first, middle, last string) ([]*competitordb.Competitor, error) {
			seenFirst = first
			return nil, nil
		}
		svc := NewParticipationService(fake, testLogger())

		_, err := svc.FindByNames(context.Background(), "IVAN", "", "")
		require.Error(t, err)
		assert.Equal(t, "No competitors with these names", apperrors.From(err).Details)
		assert.Equal(t, "ivan", seenFirst)
	})

	t.Run("competitor exists but never raced", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		fake.CompetitorRepo.FindByNamesPartialFn = func(ctx context.Context, db bun.IDB, first, middle, last string) ([]*competitordb.Competitor, error) {
			return []*competitordb.Competitor{g.competitor}, nil
		}
		svc := NewParticipationService(fake, testLogger())

		_, err := svc.FindByNames(context.Background(), "ivan", "", "")
		require.Error(t, err)
		assert.Equal(t, "No results from participation of competitors with these names", apperrors.From(err).Details)
	})

	t.Run("flattens the graph", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		fake.CompetitorRepo.FindByNamesPartialFn = func(ctx context.Context, db bun.IDB, first, middle, last string) ([]*competitordb.Competitor, error) {
			return []*competitordb.Competitor{g.competitor}, nil
		}
		fake.ParticipationRepo.FindByCompetitorFn = func(ctx context.Context, db bun.IDB, competitorID uuid.UUID) ([]*participationdb.Participation, error) {
			return []*participationdb.Participation{g.participation()}, nil
		}
		svc := NewParticipationService(fake, testLogger())

		got, err := svc.FindByNames(context.Background(), "ivan", "", "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Bulgarian Cup I 2024", got[0].CompetitionName)
		assert.Equal(t, "sprint", got[0].EventType)
	})
}

func TestParticipationFindByCompetition(t *testing.T) {
	t.Run("malformed date", func(t *testing.T) {
		svc := NewParticipationService(uowtest.New(), testLogger())
		_, err := svc.FindByCompetition(context.Background(), "cup", "10-10-2024")
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 400, appErr.Status)
		assert.Equal(t, "Invalid date format. Expected format is yyyy-MM-dd.", appErr.Details)
	})

	t.Run("no matching competitions", func(t *testing.T) {
		svc := NewParticipationService(uowtest.New(), testLogger())
		_, err := svc.FindByCompetition(context.Background(), "cup", "2024-10-10")
		require.Error(t, err)
		assert.Equal(t, "No competitions with this name", apperrors.From(err).Details)
	})

	t.Run("competition exists but has no participations", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		fake.CompetitionRepo.FindByNamePartialAndDateFn = func(ctx context.Context, db bun.IDB, partial string, date sharedtypes.Date) ([]*competitiondb.Competition, error) {
			assert.Equal(t, "bulgarian", partial)
			return []*competitiondb.Competition{g.competition}, nil
		}
		svc := NewParticipationService(fake, testLogger())

		_, err := svc.FindByCompetition(context.Background(), "BULGARIAN", "2024-10-10")
		require.Error(t, err)
		assert.Equal(t, "No results for participation on this competition", apperrors.From(err).Details)
	})
}

func TestParticipationFindByDistance(t *testing.T) {
	t.Run("no such event", func(t *testing.T) {
		svc := NewParticipationService(uowtest.New(), testLogger())
		_, err := svc.FindByDistance(context.Background(), decimal.RequireFromString("100"))
		require.Error(t, err)
		assert.Equal(t, "No events of this distance", apperrors.From(err).Details)
	})

	t.Run("event exists but has no participations", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		fake.EventRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*eventdb.Event, error) {
			return g.event, nil
		}
		svc := NewParticipationService(fake, testLogger())

		_, err := svc.FindByDistance(context.Background(), decimal.RequireFromString("100.004"))
		require.Error(t, err)
		assert.Equal(t, "No results for participation in this event", apperrors.From(err).Details)
	})
}

func TestParticipationFindByTime(t *testing.T) {
	t.Run("looks up by rounded seconds", func(t *testing.T) {
		fake := uowtest.New()
		var seen float32
		fake.ResultRepo.FindBySecondsFn = func(ctx context.Context, db bun.IDB, seconds float32) ([]*resultdb.Result, error) {
			seen = seconds
			return nil, nil
		}
		svc := NewParticipationService(fake, testLogger())

		_, err := svc.FindByTime(context.Background(), 10.50049)
		require.Error(t, err)
		assert.Equal(t, "No results with this time", apperrors.From(err).Details)
		assert.InDelta(t, 10.5, seen, 0.0001)
	})

	t.Run("result exists but is orphaned", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		fake.ResultRepo.FindBySecondsFn = func(ctx context.Context, db bun.IDB, seconds float32) ([]*resultdb.Result, error) {
			return []*resultdb.Result{g.result}, nil
		}
		svc := NewParticipationService(fake, testLogger())

		_, err := svc.FindByTime(context.Background(), 10.5)
		require.Error(t, err)
		assert.Equal(t, "No results for participation with these finishing times", apperrors.From(err).Details)
	})
}

func TestParticipationFindByPlacement(t *testing.T) {
	t.Run("no results with the placement", func(t *testing.T) {
		fake := uowtest.New()
		var seen string
		fake.ResultRepo.FindByPlacePartialFn = func(ctx context.Context, db bun.IDB, partial string) ([]*resultdb.Result, error) {
			seen = partial
			return nil, nil
		}
		svc := NewParticipationService(fake, testLogger())

		_, err := svc.FindByPlacement(context.Background(), "DNF")
		require.Error(t, err)
		assert.Equal(t, "No results with this placement", apperrors.From(err).Details)
		assert.Equal(t, "dnf", seen)
	})

	t.Run("flattens matching participations", func(t *testing.T) {
		fake := uowtest.New()
		g := newGraph()
		fake.ResultRepo.FindByPlacePartialFn = func(ctx context.Context, db bun.IDB, partial string) ([]*resultdb.Result, error) {
			return []*resultdb.Result{g.result}, nil
		}
		fake.ParticipationRepo.FindByResultFn = func(ctx context.Context, db bun.IDB, resultID uuid.UUID) ([]*participationdb.Participation, error) {
			return []*participationdb.Participation{g.participation()}, nil
		}
		svc := NewParticipationService(fake, testLogger())

		got, err := svc.FindByPlacement(context.Background(), "1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].Place)
	})
}

func TestParticipationFindAll(t *testing.T) {
	svc := NewParticipationService(uowtest.New(), testLogger())
	_, err := svc.FindAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.DefaultNotFoundMessage, apperrors.From(err).Details)
}
