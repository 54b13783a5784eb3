package nationalityservice

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow/uowtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNationalitySave(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*uowtest.Fake)
		wantErr     bool
		wantStatus  int
		wantDetails string
	}{
		{
			name:  "happy path",
			setup: func(f *uowtest.Fake) {},
		},
		{
			name: "duplicate country name",
			setup: func(f *uowtest.Fake) {
				f.NationalityRepo.ExistsByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
					return true, nil
				}
			},
			wantErr:     true,
			wantStatus:  409,
			wantDetails: "The country 'Bulgaria' already exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := uowtest.New()
			tt.setup(fake)
			var inserted *nationalitydb.Nationality
			fake.NationalityRepo.InsertFn = func(ctx context.Context, db bun.IDB, n *nationalitydb.Nationality) error {
				inserted = n
				return nil
			}

			svc := NewNationalityService(fake, testLogger())
			got, err := svc.Save(context.Background(), NationalityDTO{CountryName: "Bulgaria"})

			if tt.wantErr {
				require.Error(t, err)
				appErr := apperrors.From(err)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				assert.Equal(t, tt.wantDetails, appErr.Details)
				assert.Nil(t, inserted, "conflict must not insert")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bulgaria", got.CountryName)
			require.NotNil(t, inserted)
			assert.Equal(t, "Bulgaria", inserted.CountryName)
		})
	}
}

func TestNationalityGetAll(t *testing.T) {
	t.Run("empty table is a not found", func(t *testing.T) {
		svc := NewNationalityService(uowtest.New(), testLogger())
		_, err := svc.GetAll(context.Background())
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, apperrors.DefaultNotFoundMessage, appErr.Details)
	})

	t.Run("returns every nationality", func(t *testing.T) {
		fake := uowtest.New()
		fake.NationalityRepo.FindAllFn = func(ctx context.Context, db bun.IDB) ([]*nationalitydb.Nationality, error) {
			return []*nationalitydb.Nationality{{CountryName: "Bulgaria"}, {CountryName: "Greece"}}, nil
		}
		svc := NewNationalityService(fake, testLogger())
		got, err := svc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []NationalityDTO{{CountryName: "Bulgaria"}, {CountryName: "Greece"}}, got)
	})
}

func TestNationalityGetByPartialName(t *testing.T) {
	fake := uowtest.New()
	var gotPartial string
	fake.NationalityRepo.FindByPartialNameFn = func(ctx context.Context, db bun.IDB, partial string) ([]*nationalitydb.Nationality, error) {
		gotPartial = partial
		return []*nationalitydb.Nationality{{CountryName: "Bulgaria"}}, nil
	}
	svc := NewNationalityService(fake, testLogger())

	_, err := svc.GetByPartialName(context.Background(), "BULG")
	require.NoError(t, err)
	assert.Equal(t, "bulg", gotPartial, "lookup is lowercased")

	fake.NationalityRepo.FindByPartialNameFn = nil
	_, err = svc.GetByPartialName(context.Background(), "xx")
	require.Error(t, err)
	assert.Equal(t, "Cannot find entities", apperrors.From(err).Details)
}

func TestNationalityDelete(t *testing.T) {
	t.Run("absent country", func(t *testing.T) {
		svc := NewNationalityService(uowtest.New(), testLogger())
		_, err := svc.Delete(context.Background(), "Atlantis")
		require.Error(t, err)
		appErr := apperrors.From(err)
		assert.Equal(t, 404, appErr.Status)
		assert.Equal(t, "The country 'Atlantis' does not exist and therefore cannot be deleted.", appErr.Details)
	})

	t.Run("returns the deleted record", func(t *testing.T) {
		fake := uowtest.New()
		fake.NationalityRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*nationalitydb.Nationality, error) {
			return &nationalitydb.Nationality{CountryName: "Bulgaria"}, nil
		}
		deleted := false
		fake.NationalityRepo.DeleteFn = func(ctx context.Context, db bun.IDB, n *nationalitydb.Nationality) error {
			deleted = true
			return nil
		}
		svc := NewNationalityService(fake, testLogger())
		got, err := svc.Delete(context.Background(), "Bulgaria")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, "Bulgaria", got.CountryName)
	})
}

func TestNationalityUpdate(t *testing.T) {
	t.Run("missing current name has its own message", func(t *testing.T) {
		svc := NewNationalityService(uowtest.New(), testLogger())
		_, err := svc.Update(context.Background(), EditNationalityDTO{
			CurrentNationalityName: "Atlantis",
			NewNationalityName:     "Bulgaria",
		})
		require.Error(t, err)
		assert.Equal(t, "Nationality not found: Atlantis", apperrors.From(err).Details)
	})

	t.Run("renames in place", func(t *testing.T) {
		fake := uowtest.New()
		stored := &nationalitydb.Nationality{CountryName: "Bulgaia"}
		fake.NationalityRepo.FindByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (*nationalitydb.Nationality, error) {
			return stored, nil
		}
		svc := NewNationalityService(fake, testLogger())
		got, err := svc.Update(context.Background(), EditNationalityDTO{
			CurrentNationalityName: "Bulgaia",
			NewNationalityName:     "Bulgaria",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bulgaria", got.CountryName)
		assert.Equal(t, "Bulgaria", stored.CountryName)
	})
}
