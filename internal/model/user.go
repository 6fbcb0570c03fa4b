package model

import (
	"time"

	"github.com/uptrace/bun"
)

// User is a dashboard account. PasswordHash never leaves the server.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u" json:"-"`

	ID           string     `bun:"id,pk" json:"id"`
	SiteKey      string     `bun:"site_key,notnull" json:"-"`
	Username     string     `bun:"username,notnull" json:"username"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	Role         string     `bun:"role,notnull,default:'ADMIN'" json:"role"`
	CreatedAt    time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt    *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`
}
