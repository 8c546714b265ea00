package secondary

import (
	"context"

	"github.com/campushub/backend/internal/domain/entity"
)

// NotificationRepository defines the interface for inbox data access
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error)
	GetUnread(ctx context.Context, userID string) ([]entity.Notification, error)
	// MarkRead flips is_read on the recipient's own notification. Other
	// users' notifications are left untouched.
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}
