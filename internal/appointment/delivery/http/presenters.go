package http

import (
	"time"

	"sitekit-api/internal/appointment"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

type createReq struct {
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required,email"`
	CustomerPhone *string   `json:"customer_phone"`
	Service       string    `json:"service" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
	Note          *string   `json:"note"`
}

func (req createReq) toInput() appointment.CreateInput {
	return appointment.CreateInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Service:       req.Service,
		ScheduledAt:   req.ScheduledAt,
		Note:          req.Note,
	}
}

type getReq struct {
	paginator.PaginateQuery
	Status string `form:"status"`
}

func (req getReq) toInput() appointment.GetInput {
	return appointment.GetInput{
		PaginateQuery: req.PaginateQuery,
		Status:        model.AppointmentStatus(req.Status),
	}
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

type getResp struct {
	Appointments []model.Appointment         `json:"appointments"`
	Paginator    paginator.PaginatorResponse `json:"paginator"`
}

func newGetResp(o appointment.GetOutput) getResp {
	as := o.Appointments
	if as == nil {
		as = []model.Appointment{}
	}
	return getResp{
		Appointments: as,
		Paginator:    o.Paginator.ToResponse(),
	}
}
