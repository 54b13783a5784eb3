package eventservice

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	eventdb "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow/uowtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEventSave(t *testing.T) {
	t.Run("rounds distance before persisting", func(t *testing.T) {
		fake := uowtest.New()
		var inserted *eventdb.Event
		fake.EventRepo.InsertFn = func(ctx context.Context, db bun.IDB, e *eventdb.Event) error {
			inserted = e
			return nil
		}
		svc := NewEventService(fake, testLogger())

		_, err := svc.Save(context.Background(), EventDTO{Distance: dec("100.005"), EventType: "sprint"})
		require.NoError(t, err)
		require.NotNil(t, inserted)
		assert.Equal(t, "100.01", inserted.Distance.String())
		assert.Equal(t, "sprint", inserted.EventType)
	})

	t.Run("distance alone keys the conflict", func(t *testing.T) {
		fake := uowtest.New()
		var seen []validation.Cond
		fake.EventRepo.ExistsByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
			seen = conds
			return true, nil
		}
		svc := NewEventService(fake, testLogger())

		_, err := svc.Save(context.Background(), EventDTO{Distance: dec("200"), EventType: "sprint"})
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 409, appErr.Status)
		assert.Equal(t, "Event of distance '200' already exists", appErr.Details)
		require.Len(t, seen, 1)
		assert.Equal(t, "distance", seen[0].Column)
	})
}

func TestEventGetByEventType(t *testing.T) {
	// Unlike the distance lookup, an empty type lookup is not an error.
	svc := NewEventService(uowtest.New(), testLogger())
	got, err := svc.GetByEventType(context.Background(), "hurdles")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEventGetByEventDistance(t *testing.T) {
	svc := NewEventService(uowtest.New(), testLogger())
	_, err := svc.GetByEventDistance(context.Background(), dec("42195"))
	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, 404, appErr.Status)
	assert.Equal(t, "No events found", appErr.Details)
}

func TestEventDelete(t *testing.T) {
	t.Run("absent pair", func(t *testing.T) {
		svc := NewEventService(uowtest.New(), testLogger())
		_, err := svc.Delete(context.Background(), EventDTO{Distance: dec("100"), EventType: "sprint"})
		require.Error(t, err)
		assert.Equal(t, "Such entity does not exist.", apperrors.From(err).Details)
	})

	t.Run("looks up by rounded distance and type", func(t *testing.T) {
		fake := uowtest.New()
		var seen []validation.Cond
		fake.EventRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*eventdb.Event, error) {
			seen = conds
			return eventdb.NewEvent(dec("100"), "sprint"), nil
		}
		deleted := false
		fake.EventRepo.DeleteFn = func(ctx context.Context, db bun.IDB, e *eventdb.Event) error {
			deleted = true
			return nil
		}
		svc := NewEventService(fake, testLogger())

		_, err := svc.Delete(context.Background(), EventDTO{Distance: dec("100.004"), EventType: "sprint"})
		require.NoError(t, err)
		assert.True(t, deleted)
		require.Len(t, seen, 2)
		assert.Equal(t, "100", seen[0].Value.(decimal.Decimal).String())
		assert.Equal(t, "sprint", seen[1].Value)
	})
}

func TestEventUpdate(t *testing.T) {
	fake := uowtest.New()
	stored := eventdb.NewEvent(dec("100"), "sprint")
	fake.EventRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*eventdb.Event, error) {
		return stored, nil
	}
	svc := NewEventService(fake, testLogger())

	got, err := svc.Update(context.Background(), EditEventDTO{
		Distance:     dec("100"),
		EventType:    "sprint",
		NewDistance:  dec("110.005"),
		NewEventType: "hurdles",
	})
	require.NoError(t, err)
	assert.Equal(t, "110.01", got.Distance.String())
	assert.Equal(t, "hurdles", got.EventType)
	assert.Equal(t, "hurdles", stored.EventType)
}
