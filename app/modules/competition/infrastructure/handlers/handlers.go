// Package competitionhandlers exposes the competition resource over HTTP.
package competitionhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	competitionservice "github.com/trackside-club/trackmeet-backend/app/modules/competition/application"
	"github.com/trackside-club/trackmeet-backend/app/shared/httputil"
)

// Handlers handles HTTP requests for competitions.
type Handlers struct {
	service *competitionservice.CompetitionService
}

// New creates competition handlers.
func New(service *competitionservice.CompetitionService) *Handlers {
	return &Handlers{service: service}
}

// Register mounts the competition routes.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/competition", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/getByName", h.GetByName)
		r.Get("/getByDate", h.GetByDate)
		r.Get("/getBetweenTwoDates", h.GetBetweenTwoDates)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

// Create persists a new competition. Returns 201 on success.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var dto competitionservice.CompetitionDTO
	if err := httputil.Decode(r, &dto); err != nil {
		httputil.RespondError(w, err)
		return
	}
	created, err := h.service.Save(r.Context(), dto)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusCreated, created)
}

// Delete removes a competition by its (name, date) identity.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	var dto competitionservice.CompetitionDTO
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

// GetAll returns every competition.
func (h *Handlers) GetAll(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetAll(r.Context())
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByName returns competitions matching a name fragment.
func (h *Handlers) GetByName(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByDate returns competitions held on the given date.
func (h *Handlers) GetByDate(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.GetByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetBetweenTwoDates returns competitions held within the inclusive range.
func (h *Handlers) GetBetweenTwoDates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dtos, err := h.service.GetBetweenDates(r.Context(), q.Get("dateBegin"), q.Get("dateEnd"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// Update re-identifies a competition and replaces its name and date.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var dto competitionservice.EditCompetitionDTO
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
