package http

import (
	"sitekit-api/internal/blog"
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

type getReq struct {
	paginator.PaginateQuery
	IncludeDrafts bool `form:"include_drafts"`
}

func (req getReq) toInput() blog.GetInput {
	return blog.GetInput{
		PaginateQuery: req.PaginateQuery,
		IncludeDrafts: req.IncludeDrafts,
	}
}

type createReq struct {
	Title     string  `json:"title" binding:"required"`
	Slug      string  `json:"slug"`
	Body      string  `json:"body" binding:"required"`
	CoverURL  *string `json:"cover_url"`
	Published bool    `json:"published"`
}

func (req createReq) toInput() blog.CreateInput {
	return blog.CreateInput{
		Title:     req.Title,
		Slug:      req.Slug,
		Body:      req.Body,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}
}

type updateReq struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	Body      *string `json:"body"`
	CoverURL  *string `json:"cover_url"`
	Published *bool   `json:"published"`
}

func (req updateReq) toInput(id string) blog.UpdateInput {
	return blog.UpdateInput{
		ID:        id,
		Title:     req.Title,
		Slug:      req.Slug,
		Body:      req.Body,
		CoverURL:  req.CoverURL,
		Published: req.Published,
	}
}

type getResp struct {
	Posts     []model.BlogPost            `json:"posts"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newGetResp(o blog.GetOutput) getResp {
	posts := o.Posts
	if posts == nil {
		posts = []model.BlogPost{}
	}
	return getResp{
		Posts:     posts,
		Paginator: o.Paginator.ToResponse(),
	}
}
