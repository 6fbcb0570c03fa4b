package project

type CreateInput struct {
	Title       string
	Description string
	ImageURL    *string
	Link        *string
	SortOrder   int
}

type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	ImageURL    *string
	Link        *string
	SortOrder   *int
}
