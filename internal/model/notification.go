package model

import (
	"time"

	"github.com/uptrace/bun"
)

// NotificationType tags a notification for client-side rendering.
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeWarning NotificationType = "warning"
)

// IsValid reports whether t is one of the known notification types.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeSuccess, NotificationTypeError, NotificationTypeWarning:
		return true
	}
	return false
}

// Notification is the unit of broadcast content. Rows are immutable once
// inserted; the store assigns ID and CreatedAt.
//
// The JSON shape of this struct is the push wire contract:
// {"id", "message", "type", "created_at"} — the tenant discriminator is
// never exposed on the wire.
type Notification struct {
	bun.BaseModel `bun:"table:notifications,alias:n" json:"-"`

	ID        int64            `bun:"id,pk,autoincrement" json:"id"`
	SiteKey   string           `bun:"site_key,notnull" json:"-"`
	Message   string           `bun:"message,notnull" json:"message"`
	Type      NotificationType `bun:"type,notnull" json:"type"`
	CreatedAt time.Time        `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}
