package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// Register upserts the (event, user) registration. The capacity check runs
// inside the transaction so two concurrent registrations cannot both take the
// last seat. Re-registering overwrites the form data but never downgrades an
// attended row.
func (s *RegistrationRepository) Register(ctx context.Context, reg *entity.EventRegistration) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event entity.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", reg.EventID).First(&event).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&entity.EventRegistration{}).
			Where("event_id = ? AND user_id = ?", reg.EventID, reg.UserID).
			Count(&existing).Error; err != nil {
			return err
		}

		if existing == 0 && event.MaxCapacity > 0 {
			var taken int64
			if err := tx.Model(&entity.EventRegistration{}).
				Where("event_id = ?", reg.EventID).
				Count(&taken).Error; err != nil {
				return err
			}
			if taken >= int64(event.MaxCapacity) {
				return errorz.ErrEventFull
			}
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"form_data", "updated_at"}),
		}).Create(reg).Error
	})
}

func (s *RegistrationRepository) Get(ctx context.Context, eventID, userID string) (*entity.EventRegistration, error) {
	var reg entity.EventRegistration
	err := s.db.WithContext(ctx).Where("event_id = ? AND user_id = ?", eventID, userID).First(&reg).Error
	return &reg, err
}

func (s *RegistrationRepository) Delete(ctx context.Context, eventID, userID string) error {
	return s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entity.EventRegistration{}).Error
}

func (s *RegistrationRepository) CountByEventID(ctx context.Context, eventID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&entity.EventRegistration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (s *RegistrationRepository) GetAttendees(ctx context.Context, eventID string) ([]dto.Attendee, error) {
	type rawAttendee struct {
		RegistrationID string                    `gorm:"column:registration_id"`
		UserID         string                    `gorm:"column:user_id"`
		Status         entity.RegistrationStatus `gorm:"column:status"`
		FormData       []byte                    `gorm:"column:form_data"`
		Username       string                    `gorm:"column:username"`
		FullName       string                    `gorm:"column:full_name"`
		AvatarURL      string                    `gorm:"column:avatar_url"`
		GlobalXP       int                       `gorm:"column:global_xp"`
	}

	var rawResult []rawAttendee
	err := s.db.WithContext(ctx).
		Table("event_registrations").
		Select("event_registrations.id AS registration_id, event_registrations.user_id, event_registrations.status, event_registrations.form_data, profiles.username, profiles.full_name, profiles.avatar_url, profiles.global_xp").
		Joins("LEFT JOIN profiles ON profiles.user_id = event_registrations.user_id").
		Where("event_registrations.event_id = ?", eventID).
		Order("event_registrations.created_at ASC").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.Attendee, len(rawResult))
	for i, raw := range rawResult {
		result[i] = dto.Attendee{
			RegistrationID: raw.RegistrationID,
			UserID:         raw.UserID,
			Status:         raw.Status,
			FormData:       raw.FormData,
			Username:       raw.Username,
			FullName:       raw.FullName,
			AvatarURL:      raw.AvatarURL,
			GlobalXP:       raw.GlobalXP,
		}
	}
	return result, nil
}

// MarkAttended is the attendance/XP award: flip to attended and credit XP in
// one transaction. The status guard makes a double check-in a no-op, so XP
// can never be credited twice.
func (s *RegistrationRepository) MarkAttended(ctx context.Context, eventID, userID string, xp int) (bool, error) {
	credited := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.EventRegistration{}).
			Where("event_id = ? AND user_id = ? AND status = ?", eventID, userID, entity.RegistrationRegistered).
			Update("status", entity.RegistrationAttended)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var existing int64
			if err := tx.Model(&entity.EventRegistration{}).
				Where("event_id = ? AND user_id = ?", eventID, userID).
				Count(&existing).Error; err != nil {
				return err
			}
			if existing == 0 {
				return errorz.ErrNotRegistered
			}
			// Already attended.
			return nil
		}

		credited = true
		return tx.Model(&entity.Profile{}).
			Where("user_id = ?", userID).
			Update("global_xp", gorm.Expr("global_xp + ?", xp)).Error
	})
	return credited, err
}

func (s *RegistrationRepository) GetDueReminders(ctx context.Context, until time.Time) ([]dto.ReminderItem, error) {
	var result []dto.ReminderItem
	err := s.db.WithContext(ctx).
		Table("event_registrations").
		Select("event_registrations.id AS registration_id, event_registrations.user_id, events.id AS event_id, events.title AS event_title, events.start_at").
		Joins("INNER JOIN events ON events.id = event_registrations.event_id").
		Where("event_registrations.reminded_at IS NULL AND events.start_at > ? AND events.start_at <= ?", time.Now(), until).
		Scan(&result).Error
	return result, err
}

func (s *RegistrationRepository) MarkReminded(ctx context.Context, registrationID string, n *entity.Notification) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(n).Error; err != nil {
			return err
		}
		return tx.Model(&entity.EventRegistration{}).
			Where("id = ?", registrationID).
			Update("reminded_at", time.Now()).Error
	})
}

func (s *RegistrationRepository) UpsertRSVP(ctx context.Context, rsvp *entity.EventRSVP) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(rsvp).Error
}

func (s *RegistrationRepository) DeleteRSVP(ctx context.Context, eventID, userID string) error {
	return s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&entity.EventRSVP{}).Error
}
