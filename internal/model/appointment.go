package model

import (
	"time"

	"github.com/uptrace/bun"
)

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// IsValid reports whether s is a known appointment status.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a customer booking request.
type Appointment struct {
	bun.BaseModel `bun:"table:appointments,alias:a" json:"-"`

	ID            string            `bun:"id,pk" json:"id"`
	SiteKey       string            `bun:"site_key,notnull" json:"-"`
	CustomerName  string            `bun:"customer_name,notnull" json:"customer_name"`
	CustomerEmail string            `bun:"customer_email,notnull" json:"customer_email"`
	CustomerPhone *string           `bun:"customer_phone" json:"customer_phone,omitempty"`
	Service       string            `bun:"service,notnull" json:"service"`
	ScheduledAt   time.Time         `bun:"scheduled_at,notnull" json:"scheduled_at"`
	Status        AppointmentStatus `bun:"status,notnull,default:'pending'" json:"status"`
	Note          *string           `bun:"note" json:"note,omitempty"`
	CreatedAt     time.Time         `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time         `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}
