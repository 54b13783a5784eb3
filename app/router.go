package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/trackside-club/trackmeet-backend/app/metrics"
)

// RouteRegistrar is the slice of a module's handlers the router needs.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// NewRouter assembles the chi router: standard middleware, health and
// metrics endpoints, then every module's routes.
func NewRouter(m *metrics.HTTPMetrics, registrars ...RouteRegistrar) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(m.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	for _, registrar := range registrars {
		registrar.Register(r)
	}
	return r
}
