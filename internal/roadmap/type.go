package roadmap

import "sitekit-api/internal/model"

type CreateInput struct {
	Title   string
	Details string
	Status  model.RoadmapStatus
}

type UpdateStatusInput struct {
	ID     string
	Status model.RoadmapStatus
}
