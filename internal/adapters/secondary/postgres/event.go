package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func (s *EventRepository) CreateWithFields(ctx context.Context, event *entity.Event, fieldTypeIDs []string) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		for i, fieldTypeID := range fieldTypeIDs {
			link := entity.EventRegistrationField{
				EventID:      event.ID,
				FieldTypeID:  fieldTypeID,
				DisplayOrder: i,
				IsRequired:   true,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return event, err
}

func (s *EventRepository) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	return &event, err
}

// Delete removes the event together with its registrations, field links and
// RSVPs, mirroring the cascade the hosted backend used to perform.
func (s *EventRepository) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&entity.EventRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&entity.EventRegistrationField{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&entity.EventRSVP{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Event{}).Error
	})
}

const eventStatsSelect = `events.*,
(SELECT COUNT(*) FROM event_registrations er WHERE er.event_id = events.id) AS attendees_count,
COALESCE((SELECT er2.status FROM event_registrations er2 WHERE er2.event_id = events.id AND er2.user_id = ?), '') AS my_status`

func (s *EventRepository) GetByClubID(ctx context.Context, clubID, viewerID string) ([]dto.EventWithStats, error) {
	var result []dto.EventWithStats
	err := s.db.WithContext(ctx).
		Table("events").
		Select(eventStatsSelect, viewerID).
		Where("events.club_id = ?", clubID).
		Order("events.start_at ASC").
		Scan(&result).Error
	return result, err
}

func (s *EventRepository) GetGlobal(ctx context.Context, viewerID string) ([]dto.EventWithStats, error) {
	var result []dto.EventWithStats
	err := s.db.WithContext(ctx).
		Table("events").
		Select(eventStatsSelect+`,
COALESCE(clubs.name, '') AS club_name, COALESCE(clubs.banner_url, '') AS club_banner`, viewerID).
		Joins("LEFT JOIN clubs ON clubs.id = events.club_id").
		Where("events.is_public = ?", true).
		Order("events.start_at ASC").
		Scan(&result).Error
	return result, err
}

func (s *EventRepository) GetUpcomingPublic(ctx context.Context, from time.Time) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).
		Where("is_public = ? AND start_at >= ?", true, from).
		Order("start_at ASC").
		Find(&events).Error
	return events, err
}

func (s *EventRepository) FieldTypes(ctx context.Context) ([]entity.RegistrationFieldType, error) {
	var types []entity.RegistrationFieldType
	err := s.db.WithContext(ctx).Order("display_order ASC").Find(&types).Error
	return types, err
}

func (s *EventRepository) EventFields(ctx context.Context, eventID string) ([]dto.EventField, error) {
	type rawField struct {
		entity.RegistrationFieldType
		IsRequired    bool `gorm:"column:is_required"`
		LinkedOrder   int  `gorm:"column:linked_order"`
	}

	var rawResult []rawField
	err := s.db.WithContext(ctx).
		Table("event_registration_fields").
		Select("registration_field_types.*, event_registration_fields.is_required, event_registration_fields.display_order AS linked_order").
		Joins("INNER JOIN registration_field_types ON registration_field_types.id = event_registration_fields.field_type_id").
		Where("event_registration_fields.event_id = ?", eventID).
		Order("event_registration_fields.display_order ASC").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.EventField, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.EventField{
			RegistrationFieldType: raw.RegistrationFieldType,
			IsRequired:            raw.IsRequired,
			DisplayOrder:          raw.LinkedOrder,
		}
	}
	return result, nil
}
