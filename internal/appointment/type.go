package appointment

import (
	"time"

	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

type CreateInput struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Service       string
	ScheduledAt   time.Time
	Note          *string
}

type GetInput struct {
	paginator.PaginateQuery
	Status model.AppointmentStatus
}

type GetOutput struct {
	Appointments []model.Appointment
	Paginator    paginator.Paginator
}

type UpdateStatusInput struct {
	ID     string
	Status model.AppointmentStatus
}
