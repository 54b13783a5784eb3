// Package eventhandlers exposes the event resource over HTTP.
package eventhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	eventservice "github.com/trackside-club/trackmeet-backend/app/modules/event/application"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/httputil"
)

// Handlers handles HTTP requests for events.
type Handlers struct {
	service *eventservice.EventService
}

// New creates event handlers.
func New(service *eventservice.EventService) *Handlers {
	return &Handlers{service: service}
}

// Register mounts the event routes.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/api/v1/event", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/eventType/{eventType}", h.GetByEventType)
		r.Get("/eventDistance/{eventDistance}", h.GetByEventDistance)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

// Create persists a new event.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var dto eventservice.EventDTO
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

// GetAll returns every event.
func (h *Handlers) GetAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByEventType returns events with the given type label.
func (h *Handlers) GetByEventType(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetByEventType(r.Context(), chi.URLParam(r, "eventType"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByEventDistance returns events with the given distance.
func (h *Handlers) GetByEventDistance(w http.ResponseWriter, r *http.Request) {
	distance, err := decimal.NewFromString(chi.URLParam(r, "eventDistance"))
	if err != nil {
		httputil.RespondError(w, apperrors.BadRequest("Invalid distance: "+chi.URLParam(r, "eventDistance")))
		return
	}
	dtos, err := h.service.GetByEventDistance(r.Context(), distance)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// Delete removes an event identified by (distance, type).
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	var dto eventservice.EventDTO
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

// Update re-identifies an event and replaces its fields.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var dto eventservice.EditEventDTO
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
