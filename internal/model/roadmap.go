package model

import (
	"time"

	"github.com/uptrace/bun"
)

// RoadmapStatus is the delivery state of a roadmap item.
type RoadmapStatus string

const (
	RoadmapStatusPlanned    RoadmapStatus = "planned"
	RoadmapStatusInProgress RoadmapStatus = "in_progress"
	RoadmapStatusDone       RoadmapStatus = "done"
)

// IsValid reports whether s is a known roadmap status.
func (s RoadmapStatus) IsValid() bool {
	switch s {
	case RoadmapStatusPlanned, RoadmapStatusInProgress, RoadmapStatusDone:
		return true
	}
	return false
}

// RoadmapItem is a publicly visible, voteable roadmap entry.
type RoadmapItem struct {
	bun.BaseModel `bun:"table:roadmap_items,alias:ri" json:"-"`

	ID        string        `bun:"id,pk" json:"id"`
	SiteKey   string        `bun:"site_key,notnull" json:"-"`
	Title     string        `bun:"title,notnull" json:"title"`
	Details   string        `bun:"details,notnull" json:"details"`
	Status    RoadmapStatus `bun:"status,notnull,default:'planned'" json:"status"`
	Votes     int64         `bun:"votes,notnull,default:0" json:"votes"`
	CreatedAt time.Time     `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time     `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
