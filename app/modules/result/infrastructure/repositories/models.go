package resultdb

import (
	"math"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Result is one competitor's outcome in one event. Results are owned by a
// participation and never created independently.
type Result struct {
	bun.BaseModel `bun:"table:results,alias:r"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Seconds       float32   `bun:"seconds,notnull" json:"seconds"`
	Finished      bool      `bun:"finished,notnull" json:"finished"`
	Place         string    `bun:"place,notnull" json:"place"`
}

// RoundSeconds normalizes an elapsed time to three fraction digits, half-up.
func RoundSeconds(seconds float32) float32 {
	return float32(math.Round(float64(seconds)*1000) / 1000)
}

// NewResult builds a result with the elapsed time normalized.
func NewResult(seconds float32, finished bool, place string) *Result {
	return &Result{
		Seconds:  RoundSeconds(seconds),
		Finished: finished,
		Place:    place,
	}
}

// Matches reports whether the stored triple equals the given one. Incoming
// seconds are normalized the same way they were on the write path, so the
// comparison is exact.
func (r *Result) Matches(seconds float32, finished bool, place string) bool {
	return r.Seconds == RoundSeconds(seconds) && r.Finished == finished && r.Place == place
}
