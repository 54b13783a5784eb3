package nationalitydb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Nationality represents one country a competitor can hold citizenship of.
type Nationality struct {
	bun.BaseModel `bun:"table:nationalities,alias:n"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CountryName   string    `bun:"country_name,notnull,unique" json:"country_name"`
}
