package repository

import (
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

type GetOptions struct {
	paginator.PaginateQuery
	Status model.AppointmentStatus
}
