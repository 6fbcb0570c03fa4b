package model

import (
	"time"

	"github.com/uptrace/bun"
)

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	bun.BaseModel `bun:"table:contact_messages,alias:cm" json:"-"`

	ID        string     `bun:"id,pk" json:"id"`
	SiteKey   string     `bun:"site_key,notnull" json:"-"`
	Name      string     `bun:"name,notnull" json:"name"`
	Email     string     `bun:"email,notnull" json:"email"`
	Subject   string     `bun:"subject,notnull" json:"subject"`
	Body      string     `bun:"body,notnull" json:"body"`
	Read      bool       `bun:"read,notnull,default:false" json:"read"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	DeletedAt *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`
}
