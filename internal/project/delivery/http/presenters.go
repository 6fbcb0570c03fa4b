package http

import "sitekit-api/internal/project"

type createReq struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	ImageURL    *string `json:"image_url"`
	Link        *string `json:"link"`
	SortOrder   int     `json:"sort_order"`
}

func (req createReq) toInput() project.CreateInput {
	return project.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		SortOrder:   req.SortOrder,
	}
}

type updateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Link        *string `json:"link"`
	SortOrder   *int    `json:"sort_order"`
}

func (req updateReq) toInput(id string) project.UpdateInput {
	return project.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		SortOrder:   req.SortOrder,
	}
}
