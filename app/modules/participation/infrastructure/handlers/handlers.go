// Package participationhandlers exposes the participation resource over HTTP.
package participationhandlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	participationservice "github.com/trackside-club/trackmeet-backend/app/modules/participation/application"
	"github.com/trackside-club/trackmeet-backend/app/shared/apperrors"
	"github.com/trackside-club/trackmeet-backend/app/shared/httputil"
)

// Handlers handles HTTP requests for participations.
type Handlers struct {
	service *participationservice.ParticipationService
}

// New creates participation handlers.
func New(service *participationservice.ParticipationService) *Handlers {
	return &Handlers{service: service}
}

// Register mounts the participation routes.
func (h *Handlers) Register(r chi.Router) {
	r.Route("/participation", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/getByNames", h.GetByNames)
		r.Get("/getByCompetition", h.GetByCompetition)
		r.Get("/getByDistance", h.GetByDistance)
		r.Get("/getByTime", h.GetByTime)
		r.Get("/getByPlace", h.GetByPlace)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Delete("/", h.Delete)
	})
}

// List returns every participation.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindAll(r.Context())
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByNames returns participations filtered by competitor name fragments.
func (h *Handlers) GetByNames(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dtos, err := h.service.FindByNames(r.Context(),
		q.Get("firstName"), q.Get("middleName"), q.Get("lastName"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByCompetition returns participations in a named competition on a date.
func (h *Handlers) GetByCompetition(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	dtos, err := h.service.FindByCompetition(r.Context(),
		q.Get("competitionName"), q.Get("competitionDate"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByDistance returns participations in the event of a distance.
func (h *Handlers) GetByDistance(w http.ResponseWriter, r *http.Request) {
	distance, err := decimal.NewFromString(r.URL.Query().Get("eventDistance"))
	if err != nil {
		httputil.RespondError(w, apperrors.BadRequest("Invalid distance"))
		return
	}
	dtos, err := h.service.FindByDistance(r.Context(), distance)
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByTime returns participations with the exact finishing time.
func (h *Handlers) GetByTime(w http.ResponseWriter, r *http.Request) {
	seconds, err := strconv.ParseFloat(r.URL.Query().Get("timeFinished"), 32)
	if err != nil {
		httputil.RespondError(w, apperrors.BadRequest("Invalid time"))
		return
	}
	dtos, err := h.service.FindByTime(r.Context(), float32(seconds))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// GetByPlace returns participations whose placement matches the fragment.
func (h *Handlers) GetByPlace(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.FindByPlacement(r.Context(), r.URL.Query().Get("placement"))
	if err != nil {
		httputil.RespondError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, dtos)
}

// Create records a new participation with its result.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	var dto participationservice.ParticipationDTO
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

// Update moves a participation to a new event and result.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	var dto participationservice.EditParticipationDTO
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

// Delete removes a participation and its owned result.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	var dto participationservice.ParticipationDTO
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
