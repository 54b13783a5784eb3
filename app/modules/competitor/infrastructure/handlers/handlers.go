// Package competitorhandlers exposes the competitor resource over HTTP.
package competitorhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	competitorservice "github.com/trackside-club/trackmeet-backend/app/modules/competitor/application"
	"github.com/trackside-club/trackmeet-backend/app/shared/httputil"
)

// Handlers handles HTTP requests for competitors.
type Handlers struct {
	service *competitorservice.CompetitorService
}

// New creates competitor handlers.
func New(service *competitorservice.CompetitorService) *Handlers {
	return &Handlers{service: service}
}

// Register mounts the competitor routes.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/api/v1/competitor", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/{mobilePhone}", h.Delete)
	})
}

// List returns every competitor.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// Create persists a new competitor.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var dto competitorservice.CompetitorDTO
	if err := httputil.Decode(r, &dto); err != nil {
		httputil.RespondError(w, err)
		return
	}
	created, err := h.service.Save(r.Context(), dto)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, created)
}

// Update rewrites a competitor's details and nationality set.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var dto competitorservice.EditCompetitorDTO
	if err := httputil.Decode(r, &dto); err != nil {
		httputil.RespondError(w, err)
		return
	}
	updated, err := h.service.Update(r.Context(), dto)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, updated)
}

// Delete removes a competitor by mobile phone.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	phone := chi.URLParam(r, "mobilePhone")
	deleted, err := h.service.Delete(r.Context(), phone)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, deleted)
}
