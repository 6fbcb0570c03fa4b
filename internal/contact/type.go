package contact

import (
	"sitekit-api/internal/model"
	"sitekit-api/pkg/paginator"
)

type CreateInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

type GetInput struct {
	paginator.PaginateQuery

	// UnreadOnly restricts the listing to unread messages.
	UnreadOnly bool
}

type GetOutput struct {
	Messages  []model.ContactMessage
	Paginator paginator.Paginator
}
