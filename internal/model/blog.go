package model

import (
	"time"

	"github.com/uptrace/bun"
)

// BlogPost is a tenant-scoped blog entry.
type BlogPost struct {
	bun.BaseModel `bun:"table:blog_posts,alias:bp" json:"-"`

	ID        string     `bun:"id,pk" json:"id"`
	SiteKey   string     `bun:"site_key,notnull" json:"-"`
	Title     string     `bun:"title,notnull" json:"title"`
	Slug      string     `bun:"slug,notnull" json:"slug"`
	Body      string     `bun:"body,notnull" json:"body"`
	CoverURL  *string    `bun:"cover_url" json:"cover_url,omitempty"`
	Published bool       `bun:"published,notnull,default:false" json:"published"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"-"`
}
