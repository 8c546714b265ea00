package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/entity"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

func (s *NotificationRepository) Create(ctx context.Context, n *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Create(n).Error
	return n, err
}

func (s *NotificationRepository) GetUnread(ctx context.Context, userID string) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (s *NotificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true).Error
}

func (s *NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Model(&entity.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
