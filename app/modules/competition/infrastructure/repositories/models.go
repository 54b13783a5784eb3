package competitiondb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	sharedtypes "github.com/trackside-club/trackmeet-backend/app/shared/types"
)

// Competition represents one meet on a given day. Business identity is the
// (name, date) pair, enforced in the service layer.
type Competition struct {
	bun.BaseModel   `bun:"table:competitions,alias:cp"`
	ID              uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CompetitionName string           `bun:"competition_name,notnull" json:"competition_name"`
	CompetitionDate sharedtypes.Date `bun:"competition_date,notnull" json:"competition_date"`
}
