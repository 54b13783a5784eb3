package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
)

type thing struct {
	Name string
}

type fakeFinder struct {
	entity *thing
	err    error
}

func (f *fakeFinder) FindBy(ctx context.Context, db bun.IDB, conds []Cond) (*thing, error) {
	return f.entity, f.err
}

type fakeChecker struct {
	exists bool
	err    error
}

func (f *fakeChecker) ExistsBy(ctx context.Context, db bun.IDB, conds []Cond) (bool, error) {
	return f.exists, f.err
}

func TestExists(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the found entity", func(t *testing.T) {
		got, err := Exists[thing](ctx, nil, &fakeFinder{entity: &thing{Name: "x"}}, By("name", "x"), "missing")
		require.NoError(t, err)
		assert.Equal(t, "x", got.Name)
	})

	t.Run("maps nil to NotFound with the message", func(t *testing.T) {
		_, err := Exists[thing](ctx, nil, &fakeFinder{}, By("name", "x"), "missing thing")
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "missing thing", appErr.Details)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := Exists[thing](ctx, nil, &fakeFinder{err: boom}, By("name", "x"), "missing")
		assert.ErrorIs(t, err, boom)
	})
}

func TestUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("passes when nothing matches", func(t *testing.T) {
		assert.NoError(t, Unique(ctx, nil, &fakeChecker{}, By("name", "x"), "taken"))
	})

	t.Run("maps a match to Conflict with the message", func(t *testing.T) {
		err := Unique(ctx, nil, &fakeChecker{exists: true}, By("name", "x"), "name taken")
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 409, appErr.Status)
		assert.Equal(t, "name taken", appErr.Details)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		boom := errors.New("boom")
		err := Unique(ctx, nil, &fakeChecker{err: boom}, By("name", "x"), "taken")
		assert.ErrorIs(t, err, boom)
	})
}

func TestNonEmpty(t *testing.T) {
	assert.NoError(t, NonEmpty([]int{1}, "empty"))

	err := NonEmpty([]int(nil), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.DefaultNotFoundMessage, apperrors.From(err).Details)
}

func TestNotNil(t *testing.T) {
	v := thing{Name: "x"}
	assert.NoError(t, NotNil(&v, "gone"))

	err := NotNil[thing](nil, "gone")
	require.Error(t, err)
	assert.Equal(t, "gone", apperrors.From(err).Details)
}
