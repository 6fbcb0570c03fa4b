package http

import (
	"sitekit-api/internal/model"
	"sitekit-api/internal/notification"
)

type broadcastReq struct {
	Message string `json:"message" binding:"required"`
	Type    string `json:"type"`
}

func (req broadcastReq) toInput() notification.BroadcastInput {
	return notification.BroadcastInput{
		Message: req.Message,
		Type:    model.NotificationType(req.Type),
	}
}

type historyReq struct {
	Limit int64 `form:"limit"`
}

func historyInput(req historyReq) notification.HistoryInput {
	return notification.HistoryInput{Limit: req.Limit}
}

type broadcastResp struct {
	Notification model.Notification `json:"notification"`
	Delivered    bool               `json:"delivered"`
}

func newBroadcastResp(o notification.NotificationOutput) broadcastResp {
	return broadcastResp{
		Notification: o.Notification,
		Delivered:    true,
	}
}

type historyResp struct {
	Notifications []model.Notification `json:"notifications"`
}

func newHistoryResp(ns []model.Notification) historyResp {
	if ns == nil {
		ns = []model.Notification{}
	}
	return historyResp{Notifications: ns}
}
