package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Project is a portfolio item shown on the marketing site.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:p" json:"-"`

	ID          string     `bun:"id,pk" json:"id"`
	SiteKey     string     `bun:"site_key,notnull" json:"-"`
	Title       string     `bun:"title,notnull" json:"title"`
	Description string     `bun:"description,notnull" json:"description"`
	ImageURL    *string    `bun:"image_url" json:"image_url,omitempty"`
	Link        *string    `bun:"link" json:"link,omitempty"`
	SortOrder   int        `bun:"sort_order,notnull,default:0" json:"sort_order"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt   *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`
}
