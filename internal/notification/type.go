package notification

import "sitekit-api/internal/model"

type BroadcastInput struct {
	Message string
	Type    model.NotificationType
}

type HistoryInput struct {
	Limit int64
}

type NotificationOutput struct {
	Notification model.Notification
}
