package http

import (
	"sitekit-api/internal/contact"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

type createReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

func (req createReq) toInput() contact.CreateInput {
	return contact.CreateInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
}

type getReq struct {
	paginator.PaginateQuery
	UnreadOnly bool `form:"unread_only"`
}

func (req getReq) toInput() contact.GetInput {
	return contact.GetInput{
		PaginateQuery: req.PaginateQuery,
		UnreadOnly:    req.UnreadOnly,
	}
}

type getResp struct {
	Messages  []model.ContactMessage      `json:"messages"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetResp(o contact.GetOutput) getResp {
	ms := o.Messages
	if ms == nil {
		ms = []model.ContactMessage{}
	}
	return getResp{
		Messages:  ms,
		Paginator: o.Paginator.ToResponse(),
	}
}
