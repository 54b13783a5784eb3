package competitordb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	nationalitydb "github.com/trackside-club/trackmeet-backend/app/modules/nationality/infrastructure/repositories"
)

// Competitor represents one registered athlete. Phone and email are the
// globally unique business keys.
type Competitor struct {
	bun.BaseModel `bun:"table:competitors,alias:c"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	FirstName     string    `bun:"first_name,notnull" json:"first_name"`
	MiddleName    string    `bun:"middle_name,notnull" json:"middle_name"`
	LastName      string    `bun:"last_name,notnull" json:"last_name"`
	Phone         string    `bun:"phone,notnull,unique" json:"phone"`
	Email         string    `bun:"email,notnull,unique" json:"email"`

	Nationalities []*nationalitydb.Nationality `bun:"m2m:competitor_nationalities,join:Competitor=Nationality" json:"nationalities"`
}

// CompetitorNationality is the join row linking competitors to the
// nationalities they hold. Registered with bun so the m2m relation resolves.
type CompetitorNationality struct {
	bun.BaseModel `bun:"table:competitor_nationalities,alias:cn"`
	CompetitorID  uuid.UUID                  `bun:"competitor_id,pk,type:uuid"`
	Competitor    *Competitor                `bun:"rel:belongs-to,join:competitor_id=id"`
	NationalityID uuid.UUID                  `bun:"nationality_id,pk,type:uuid"`
	Nationality   *nationalitydb.Nationality `bun:"rel:belongs-to,join:nationality_id=id"`
}

// CountryNames flattens the loaded nationality set to its country names.
func (c *Competitor) CountryNames() []string {
	names := make([]string, 0, len(c.Nationalities))
	for _, n := range c.Nationalities {
		names = append(names, n.CountryName)
	}
	return names
}
