package httpapi

import (
	"context"

	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/ports/primary"
)

type NotificationHandler struct {
	notificationService primary.NotificationService
}

func NewNotificationHandler(notificationService primary.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type inboxResponse struct {
	Body []entity.Notification
}

func (h *NotificationHandler) HandleInbox(ctx context.Context, _ *struct{}) (*inboxResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	notifications, err := h.notificationService.Inbox(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return &inboxResponse{Body: notifications}, nil
}

type notificationRequest struct {
	NotificationID string `path:"notificationID" doc:"Notification ID"`
}

func (h *NotificationHandler) HandleMarkRead(ctx context.Context, input *notificationRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.notificationService.MarkRead(ctx, userID, input.NotificationID); err != nil {
		return nil, mapError(err)
	}
	return message("marked read"), nil
}

func (h *NotificationHandler) HandleMarkAllRead(ctx context.Context, _ *struct{}) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.notificationService.MarkAllRead(ctx, userID); err != nil {
		return nil, mapError(err)
	}
	return message("all marked read"), nil
}
