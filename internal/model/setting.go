package model

import (
	"time"

	"github.com/uptrace/bun"
)

// SiteSetting is one key/value pair of a tenant's site configuration
// (display name, contact email, opening hours, theme flags, ...).
type SiteSetting struct {
	bun.BaseModel `bun:"table:site_settings,alias:ss" json:"-"`

	ID        string    `bun:"id,pk" json:"-"`
	SiteKey   string    `bun:"site_key,notnull" json:"-"`
	Key       string    `bun:"key,notnull" json:"key"`
	Value     string    `bun:"value,notnull" json:"value"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
