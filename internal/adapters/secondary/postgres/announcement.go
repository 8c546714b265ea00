package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
	}
}

func (s *AnnouncementRepository) Create(ctx context.Context, a *entity.ClubAnnouncement) (*entity.ClubAnnouncement, error) {
	err := s.db.WithContext(ctx).Create(a).Error
	return a, err
}

func (s *AnnouncementRepository) GetByClubID(ctx context.Context, clubID string) ([]dto.Announcement, error) {
	type rawAnnouncement struct {
		entity.ClubAnnouncement
		AuthorName   string `gorm:"column:author_name"`
		AuthorAvatar string `gorm:"column:author_avatar"`
	}

	var rawResult []rawAnnouncement
	err := s.db.WithContext(ctx).
		Table("club_announcements").
		Select("club_announcements.*, profiles.full_name AS author_name, profiles.avatar_url AS author_avatar").
		Joins("LEFT JOIN profiles ON profiles.user_id = club_announcements.author_id").
		Where("club_announcements.club_id = ?", clubID).
		Order("club_announcements.created_at DESC").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.Announcement, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.Announcement{
			ClubAnnouncement: raw.ClubAnnouncement,
			AuthorName:       raw.AuthorName,
			AuthorAvatar:     raw.AuthorAvatar,
		}
	}
	return result, nil
}
