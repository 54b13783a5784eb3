// Package nationalityhandlers exposes the nationality resource over HTTP.
package nationalityhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	nationalityservice "github.com/trackside-club/trackmeet-backend/app/modules/nationality/application"
	"github.com/trackside-club/trackmeet-backend/app/shared/httputil"
)

// Handlers handles HTTP requests for nationalities.
type Handlers struct {
	service *nationalityservice.NationalityService
}

// New creates nationality handlers.
func New(service *nationalityservice.NationalityService) *Handlers {
	return &Handlers{service: service}
}

// Register mounts the nationality routes.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/api/v1/nationality", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{countryPartialName}", h.GetByPartialName)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/{countryName}", h.Delete)
	})
}

// List returns every nationality.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByPartialName returns nationalities matching a name fragment.
func (h *Handlers) GetByPartialName(w http.ResponseWriter, r *http.Request) {
	partial := chi.URLParam(r, "countryPartialName")
	dtos, err := h.service.GetByPartialName(r.Context(), partial)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// Create persists a new nationality.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var dto nationalityservice.NationalityDTO
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

// Update renames a nationality.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var dto nationalityservice.EditNationalityDTO
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

// Delete removes a nationality by country name.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	countryName := chi.URLParam(r, "countryName")
	deleted, err := h.service.Delete(r.Context(), countryName)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, deleted)
}
