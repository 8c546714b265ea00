package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/entity"
)

type TeamInvitationRepository struct {
	db *gorm.DB
}

func NewTeamInvitationRepository(db *gorm.DB) *TeamInvitationRepository {
	return &TeamInvitationRepository{
		db: db,
	}
}

func (s *TeamInvitationRepository) CreateWithNotification(ctx context.Context, invite *entity.TeamInvitation, n *entity.Notification) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invite).Error; err != nil {
			return err
		}
		return tx.Create(n).Error
	})
}

func (s *TeamInvitationRepository) GetPendingUserIDs(ctx context.Context, teamID string) ([]string, error) {
	var userIDs []string
	err := s.db.WithContext(ctx).
		Model(&entity.TeamInvitation{}).
		Where("team_id = ?", teamID).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

// Accept moves the invitation into a membership atomically. The invitation
// row is consumed first, so a user without one cannot join, and the
// active-team check happens inside the transaction, so accepting two
// invitations at once still ends with a single team.
func (s *TeamInvitationRepository) Accept(ctx context.Context, teamID, userID, notificationID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("team_id = ? AND user_id = ?", teamID, userID).
			Delete(&entity.TeamInvitation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errorz.ErrNotFound
		}

		var active int64
		if err := tx.Model(&entity.TeamMember{}).
			Where("user_id = ? AND status = ?", userID, "active").
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return errorz.ErrAlreadyInTeam
		}

		if err := tx.Create(&entity.TeamMember{
			TeamID: teamID,
			UserID: userID,
			Role:   entity.TeamRoleMember,
		}).Error; err != nil {
			return err
		}

		return markNotificationRead(tx, userID, notificationID)
	})
}

func (s *TeamInvitationRepository) Reject(ctx context.Context, teamID, userID, notificationID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ? AND user_id = ?", teamID, userID).
			Delete(&entity.TeamInvitation{}).Error; err != nil {
			return err
		}
		return markNotificationRead(tx, userID, notificationID)
	})
}

func (s *TeamInvitationRepository) AcceptApplication(ctx context.Context, teamID, captainID, candidateID, notificationID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&entity.TeamMember{}).
			Where("user_id = ? AND status = ?", candidateID, "active").
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return errorz.ErrAlreadyInTeam
		}

		if err := tx.Create(&entity.TeamMember{
			TeamID: teamID,
			UserID: candidateID,
			Role:   entity.TeamRoleMember,
		}).Error; err != nil {
			return err
		}

		return markNotificationRead(tx, captainID, notificationID)
	})
}

// markNotificationRead scopes the update to the owner so a caller cannot
// retire somebody else's notification by guessing its ID.
func markNotificationRead(tx *gorm.DB, ownerID, notificationID string) error {
	if notificationID == "" {
		return nil
	}
	return tx.Model(&entity.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, ownerID).
		Update("is_read", true).Error
}
