package participationdb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	competitiondb "github.com/trackside-club/trackmeet-backend/app/modules/competition/infrastructure/repositories"
	competitordb "github.com/trackside-club/trackmeet-backend/app/modules/competitor/infrastructure/repositories"
	eventdb "github.com/trackside-club/trackmeet-backend/app/modules/event/infrastructure/repositories"
	resultdb "github.com/trackside-club/trackmeet-backend/app/modules/result/infrastructure/repositories"
)

// Participation ties one competitor to one event of one competition, plus
// the result they recorded there. The participation owns its result row.
type Participation struct {
	bun.BaseModel `bun:"table:participations,alias:p"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CompetitorID  uuid.UUID `bun:"competitor_id,notnull,type:uuid" json:"competitor_id"`
	CompetitionID uuid.UUID `bun:"competition_id,notnull,type:uuid" json:"competition_id"`
	EventID       uuid.UUID `bun:"event_id,notnull,type:uuid" json:"event_id"`
	ResultID      uuid.UUID `bun:"result_id,notnull,type:uuid" json:"result_id"`

	Competitor  *competitordb.Competitor   `bun:"rel:belongs-to,join:competitor_id=id" json:"competitor,omitempty"`
	Competition *competitiondb.Competition `bun:"rel:belongs-to,join:competition_id=id" json:"competition,omitempty"`
	Event       *eventdb.Event             `bun:"rel:belongs-to,join:event_id=id" json:"event,omitempty"`
	Result      *resultdb.Result           `bun:"rel:belongs-to,join:result_id=id" json:"result,omitempty"`
}
