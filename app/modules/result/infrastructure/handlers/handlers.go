// Package resulthandlers exposes the result resource over HTTP.
package resulthandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	resultservice "github.com/trackside-club/trackmeet-backend/app/modules/result/application"
	"github.com/trackside-club/trackmeet-backend/app/shared/httputil"
)

// Handlers handles HTTP requests for results.
type Handlers struct {
	service *resultservice.ResultService
}

// New creates result handlers.
func New(service *resultservice.ResultService) *Handlers {
	return &Handlers{service: service}
}

// Register mounts the result routes.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/result", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

// GetAll returns every result.
func (h *Handlers) GetAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// Create always rejects with a conflict; results are created through the
// participation endpoint.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var dto resultservice.ResultDTO
	if err := httputil.Decode(r, &dto); err != nil {
		httputil.RespondError(w, err)
		return
	}
	if _, err := h.service.Save(r.Context(), dto); err != nil {
		httputil.RespondError(w, err)
		return
	}
}

// Update re-identifies a result by its current triple and replaces it.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var dto resultservice.EditResultDTO
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

// Delete removes a result identified by its current triple.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	var dto resultservice.ResultDTO
	if err := httputil.Decode(r, &dto); err != nil {
		httputil.RespondError(w, err)
		return
	}
	deleted, err := h.service.Delete(r.Context(), dto)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, deleted)
}
