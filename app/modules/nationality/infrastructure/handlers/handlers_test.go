package nationalityhandlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	nationalityservice "github.com/trackside-club/trackmeet-backend/app/modules/nationality/application"
	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow/uowtest"
)

func newServer(fake *uowtest.Fake) *httptest.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := nationalityservice.NewNationalityService(fake, logger)
	r := chi.NewRouter()
	New(service).Register(r)
	return httptest.NewServer(r)
}

func TestCreateNationality(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		fake := uowtest.New()
		var inserted *nationalitydb.Nationality
		fake.NationalityRepo.InsertFn = func(ctx context.Context, db bun.IDB, n *nationalitydb.Nationality) error {
			inserted = n
			return nil
		}
		srv := newServer(fake)
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/api/v1/nationality/", "application/json",
			strings.NewReader(`{"countryName":"Bulgaria"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"countryName":"Bulgaria"}`, string(body))
		require.NotNil(t, inserted)
		assert.Equal(t, "Bulgaria", inserted.CountryName)
	})

	t.Run("duplicate surfaces the conflict envelope", func(t *testing.T) {
		fake := uowtest.New()
		fake.NationalityRepo.ExistsByFn = func(ctx context.Context, db bun.IDB, conds []validation.Cond) (bool, error) {
			return true, nil
		}
		srv := newServer(fake)
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/api/v1/nationality/", "application/json",
			strings.NewReader(`{"countryName":"Bulgaria"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t,
			`{"statusCode":409,"error":"Duplicate entry","details":"The country 'Bulgaria' already exists."}`,
			string(body))
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := newServer(uowtest.New())
		defer srv.Close()

		resp, err := http.Post(srv.URL+"/api/v1/nationality/", "application/json",
			strings.NewReader(`{"countryName":`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListNationalities(t *testing.T) {
	t.Run("empty set is a not-found envelope", func(t *testing.T) {
		srv := newServer(uowtest.New())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/v1/nationality/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t,
			`{"statusCode":404,"error":"Not Found","details":"Sorry, no results at this time"}`,
			string(body))
	})

	t.Run("returns the stored set", func(t *testing.T) {
		fake := uowtest.New()
		fake.NationalityRepo.FindAllFn = func(ctx context.Context, db bun.IDB) ([]*nationalitydb.Nationality, error) {
			return []*nationalitydb.Nationality{{CountryName: "Bulgaria"}}, nil
		}
		srv := newServer(fake)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/v1/nationality/")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `[{"countryName":"Bulgaria"}]`, string(body))
	})
}

func TestDeleteNationality(t *testing.T) {
	fake := uowtest.New()
	srv := newServer(fake)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/nationality/Atlantis", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t,
		`{"statusCode":404,"error":"Not Found","details":"The country 'Atlantis' does not exist and therefore cannot be deleted."}`,
		string(body))
}
