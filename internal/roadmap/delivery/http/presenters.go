package http

import (
	"sitekit-api/internal/model"
	"sitekit-api/internal/roadmap"
)

type createReq struct {
	Title   string `json:"title" binding:"required"`
	Details string `json:"details" binding:"required"`
	Status  string `json:"status"`
}

func (req createReq) toInput() roadmap.CreateInput {
	return roadmap.CreateInput{
		Title:   req.Title,
		Details: req.Details,
		Status:  model.RoadmapStatus(req.Status),
	}
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}
