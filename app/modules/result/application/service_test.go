package resultservice

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	resultdb "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow/uowtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResultSaveAlwaysRejects(t *testing.T) {
	svc := NewResultService(uowtest.New(), testLogger())
	_, err := svc.Save(context.Background(), ResultDTO{Seconds: 10.5, Finished: true, Place: "1"})
	require.Error(t, err)
	appErr := apperrors.From(err)
	assert.Equal(t, 409, appErr.Status)
	assert.Equal(t, "Internal Server Error", appErr.Kind)
	assert.Equal(t, "Results can only be created through the participation endpoint", appErr.Details)
}

func TestResultGetAll(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		svc := NewResultService(uowtest.New(), testLogger())
		_, err := svc.GetAll(context.Background())
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, apperrors.DefaultNotFoundMessage, appErr.Details)
	})

	t.Run("maps stored rows", func(t *testing.T) {
		fake := uowtest.New()
		fake.ResultRepo.FindAllFn = func(ctx context.Context, db bun.IDB) ([]*resultdb.Result, error) {
			return []*resultdb.Result{resultdb.NewResult(12.345, true, "2")}, nil
		}
		svc := NewResultService(fake, testLogger())
		got, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "2", got[0].Place)
	})
}

func TestResultUpdate(t *testing.T) {
	t.Run("absent triple", func(t *testing.T) {
		svc := NewResultService(uowtest.New(), testLogger())
		_, err := svc.Update(context.Background(), EditResultDTO{Seconds: 9.99, Finished: true, Place: "1"})
		require.Error(t, err)
		assert.Equal(t, "Such result does not exist", apperrors.From(err).Details)
	})

	t.Run("rounds replacement seconds", func(t *testing.T) {
		fake := uowtest.New()
		stored := resultdb.NewResult(10.5, true, "1")
		fake.ResultRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*resultdb.Result, error) {
			return stored, nil
		}
		svc := NewResultService(fake, testLogger())

		got, err := svc.Update(context.Background(), EditResultDTO{
			Seconds: 10.5, Finished: true, Place: "1",
			NewSeconds: 12.34567, NewFinished: false, NewPlace: "DNF",
		})
		require.NoError(t, err)
		assert.InDelta(t, 12.346, got.Seconds, 0.0001)
		assert.False(t, got.Finished)
		assert.Equal(t, "DNF", got.Place)
		assert.Equal(t, "DNF", stored.Place)
	})
}

func TestResultDelete(t *testing.T) {
	fake := uowtest.New()
	var seen []validation.Cond
	fake.ResultRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*resultdb.Result, error) {
		seen = conds
		return resultdb.NewResult(10.5, true, "1"), nil
	}
	deleted := false
	fake.ResultRepo.DeleteFn = func(ctx context.Context, db bun.IDB, r *resultdb.Result) error {
		deleted = true
		return nil
	}
	svc := NewResultService(fake, testLogger())

	_, err := svc.Delete(context.Background(), ResultDTO{Seconds: 10.5, Finished: true, Place: "1"})
	require.NoError(t, err)
	assert.True(t, deleted)
	require.Len(t, seen, 3)
	assert.Equal(t, "seconds", seen[0].Column)
	assert.Equal(t, "finished", seen[1].Column)
	assert.Equal(t, "place", seen[2].Column)
}
