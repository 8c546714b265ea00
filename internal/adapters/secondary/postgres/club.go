package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/entity"
)

type ClubRepository struct {
	db *gorm.DB
}

func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{
		db: db,
	}
}

func (s *ClubRepository) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Create(club).Error
	return club, err
}

func (s *ClubRepository) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	return &club, err
}

func (s *ClubRepository) GetAll(ctx context.Context) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Order("name").Find(&clubs).Error
	return clubs, err
}

func (s *ClubRepository) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(club).Error
	return club, err
}

// Delete removes the club and everything hanging off it, mirroring the
// cascade the hosted backend used to perform.
func (s *ClubRepository) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", id).Delete(&entity.ClubMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.ClubAnnouncement{}).Error; err != nil {
			return err
		}
		var eventIDs []string
		if err := tx.Model(&entity.Event{}).Where("club_id = ?", id).Pluck("id", &eventIDs).Error; err != nil {
			return err
		}
		if len(eventIDs) > 0 {
			if err := tx.Where("event_id IN ?", eventIDs).Delete(&entity.EventRegistration{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id IN ?", eventIDs).Delete(&entity.EventRegistrationField{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id IN ?", eventIDs).Delete(&entity.EventRSVP{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", eventIDs).Delete(&entity.Event{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&entity.Club{}).Error
	})
}
