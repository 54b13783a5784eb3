package contactdb

import (
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Contact is an address-book entry for club correspondence. Contacts are
// independent of competitors.
type Contact struct {
	bun.BaseModel `bun:"table:contacts,alias:ct"`
	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	FirstName     string    `bun:"first_name,notnull" json:"first_name"`
	MiddleName    string    `bun:"middle_name" json:"middle_name"`
	LastName      string    `bun:"last_name,notnull" json:"last_name"`
	Phone         string    `bun:"phone,notnull,unique" json:"phone"`
	Email         string    `bun:"email,notnull,unique" json:"email"`
}
