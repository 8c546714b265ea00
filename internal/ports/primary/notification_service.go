package primary

import (
	"context"

	"github.com/campushub/backend/internal/domain/entity"
)

// NotificationService defines the interface for the notification inbox
type NotificationService interface {
	Inbox(ctx context.Context, userID string) ([]entity.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error

	// SendInviteEmail and SendApplicationEmail deliver best-effort email
	// copies of inbox notifications; failures are logged, never returned.
	SendInviteEmail(ctx context.Context, userID, teamName string)
	SendApplicationEmail(ctx context.Context, captainID, candidateName, teamName string)

	StartReminderScheduler() error
	StopReminderScheduler()
}
