// Package eventservice holds the business logic for race events.
package eventservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	eventdb "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories"
	"github.com/trackside-club/trackmeet-backend/app/shared/validation"
	"github.com/trackside-club/trackmeet-backend/app/uow"
)

// EventDTO is the wire representation of an event.
type EventDTO struct {
	Distance  decimal.Decimal `json:"distance"`
	EventType string          `json:"eventType"`
}

// EditEventDTO carries the current identity plus the replacement values.
type EditEventDTO struct {
	Distance     decimal.Decimal `json:"distance"`
	EventType    string          `json:"eventType"`
	NewDistance  decimal.Decimal `json:"newDistance"`
	NewEventType string          `json:"newEventType"`
}

// EventService implements the event business logic.
type EventService struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
}

// NewEventService creates a new EventService.
func NewEventService(u uow.UnitOfWork, logger *slog.Logger) *EventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{uow: u, logger: logger}
}

// pairConds is the compound (distance, type) identity used by delete and
// update. Creation keys on distance alone; the asymmetry is part of the
// endpoint contract.
func pairConds(distance decimal.Decimal, eventType string) []validation.Cond {
	return []validation.Cond{
		{Column: "distance", Value: eventdb.RoundDistance(distance)},
		{Column: "event_type", Value: eventType},
	}
}

// Save persists a new event, failing Conflict when the distance is taken.
func (s *EventService) Save(ctx context.Context, dto EventDTO) (EventDTO, error) {
	distance := eventdb.RoundDistance(dto.Distance)
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		err := validation.Unique(ctx, db, s.uow.Events(),
			validation.By("distance", distance),
			fmt.Sprintf("Event of distance '%s' already exists", dto.Distance))
		if err != nil {
			return err
		}
		return s.uow.Events().Insert(ctx, db, eventdb.NewEvent(dto.Distance, dto.EventType))
	})
	if err != nil {
		return EventDTO{}, err
	}
	s.logger.InfoContext(ctx, "event created",
		slog.String("distance", distance.String()),
		slog.String("type", dto.EventType))
	return dto, nil
}

// GetAll returns every event, failing NotFound when there are none.
func (s *EventService) GetAll(ctx context.Context) ([]EventDTO, error) {
	var dtos []EventDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		events, err := s.uow.Events().FindAll(ctx, db)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(events, "No events found"); err != nil {
			return err
		}
		dtos = mapToDTOs(events)
		return nil
	})
	return dtos, err
}

// GetByEventType returns events with the exact type label. An empty result
// is returned as-is; only GetByEventDistance has the empty-set check.
func (s *EventService) GetByEventType(ctx context.Context, eventType string) ([]EventDTO, error) {
	var dtos []EventDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		events, err := s.uow.Events().FindByType(ctx, db, eventType)
		if err != nil {
			return err
		}
		dtos = mapToDTOs(events)
		return nil
	})
	return dtos, err
}

// GetByEventDistance returns events with the exact distance, failing
// NotFound when there are none.
func (s *EventService) GetByEventDistance(ctx context.Context, distance decimal.Decimal) ([]EventDTO, error) {
	var dtos []EventDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		events, err := s.uow.Events().FindByDistance(ctx, db, distance)
		if err != nil {
			return err
		}
		if err := validation.NonEmpty(events, "No events found"); err != nil {
			return err
		}
		dtos = mapToDTOs(events)
		return nil
	})
	return dtos, err
}

// Delete removes an event identified by the compound (distance, type) pair.
func (s *EventService) Delete(ctx context.Context, dto EventDTO) (EventDTO, error) {
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		event, err := validation.Exists[eventdb.Event](ctx, db, s.uow.Events(),
			pairConds(dto.Distance, dto.EventType),
			"Such entity does not exist.")
		if err != nil {
			return err
		}
		return s.uow.Events().Delete(ctx, db, event)
	})
	if err != nil {
		return EventDTO{}, err
	}
	s.logger.InfoContext(ctx, "event deleted", slog.String("distance", dto.Distance.String()))
	return dto, nil
}

// Update re-identifies an event by the compound (distance, type) pair and
// replaces both fields.
func (s *EventService) Update(ctx context.Context, dto EditEventDTO) (EventDTO, error) {
	var updated EventDTO
	err := s.uow.RunInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		event, err := validation.Exists[eventdb.Event](ctx, db, s.uow.Events(),
			pairConds(dto.Distance, dto.EventType),
			"Such entity does not exist.")
		if err != nil {
			return err
		}
		event.Distance = eventdb.RoundDistance(dto.NewDistance)
		event.EventType = dto.NewEventType
		if err := s.uow.Events().Update(ctx, db, event); err != nil {
			return err
		}
		updated = mapToDTO(event)
		return nil
	})
	if err != nil {
		return EventDTO{}, err
	}
	return updated, nil
}

func mapToDTO(e *eventdb.Event) EventDTO {
	return EventDTO{Distance: e.Distance, EventType: e.EventType}
}

func mapToDTOs(events []*eventdb.Event) []EventDTO {
	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, mapToDTO(e))
	}
	return dtos
}
