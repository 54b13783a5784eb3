package eventdb

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Event represents one race discipline: a distance plus a type label.
// The distance is the business key; the type is informational.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Distance      decimal.Decimal `bun:"distance,notnull,unique,type:numeric(10,2)" json:"distance"`
	EventType     string          `bun:"event_type,notnull" json:"event_type"`
}

// RoundDistance normalizes a distance to two fraction digits, half-up.
func RoundDistance(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// NewEvent builds an event with the distance normalized to scale 2.
func NewEvent(distance decimal.Decimal, eventType string) *Event {
	return &Event{
		Distance:  RoundDistance(distance),
		EventType: eventType,
	}
}
