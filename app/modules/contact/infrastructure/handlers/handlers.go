// Package contacthandlers exposes the contact book over HTTP.
package contacthandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	contactservice "github.com/trackside-club/trackmeet-backend/app/modules/contact/application"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/httputil"
)

// Handlers handles HTTP requests for contacts.
type Handlers struct {
	service *contactservice.ContactService
}

// New creates contact handlers.
func New(service *contactservice.ContactService) *Handlers {
	return &Handlers{service: service}
}

// Register mounts the contact routes.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/api/v1/contact", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List returns every contact.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// Create persists a new contact.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var dto contactservice.ContactDTO
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

// Update rewrites a contact addressed by id.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var dto contactservice.ContactEditDTO
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

// Delete removes a contact by id.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondError(w, apperrors.BadRequest("Invalid contact id"))
		return
	}
	deleted, err := h.service.Delete(r.Context(), id)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, deleted)
}
