package repository

import "sitekit-api/internal/model"

type CreateOptions struct {
	Message string
	Type    model.NotificationType
}

type ListRecentOptions struct {
	Limit int64
}
