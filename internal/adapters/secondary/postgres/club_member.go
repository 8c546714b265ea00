package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

type ClubMemberRepository struct {
	db *gorm.DB
}

func NewClubMemberRepository(db *gorm.DB) *ClubMemberRepository {
	return &ClubMemberRepository{
		db: db,
	}
}

func (s *ClubMemberRepository) Create(ctx context.Context, member *entity.ClubMember) (*entity.ClubMember, error) {
	err := s.db.WithContext(ctx).Create(member).Error
	return member, err
}

func (s *ClubMemberRepository) GetByID(ctx context.Context, id string) (*entity.ClubMember, error) {
	var member entity.ClubMember
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	return &member, err
}

func (s *ClubMemberRepository) Get(ctx context.Context, clubID, userID string) (*entity.ClubMember, error) {
	var member entity.ClubMember
	err := s.db.WithContext(ctx).Where("club_id = ? AND user_id = ?", clubID, userID).First(&member).Error
	return &member, err
}

func (s *ClubMemberRepository) UpdateStatus(ctx context.Context, id string, status entity.MembershipStatus) error {
	return s.db.WithContext(ctx).
		Model(&entity.ClubMember{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (s *ClubMemberRepository) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.ClubMember{}).Error
}

// Upsert creates or promotes the (club, user) membership in one statement,
// keyed on the unique index. Used for leadership appointment, which bypasses
// the application queue.
func (s *ClubMemberRepository) Upsert(ctx context.Context, member *entity.ClubMember) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "status", "updated_at"}),
	}).Create(member).Error
}

func (s *ClubMemberRepository) GetByUserID(ctx context.Context, userID string) ([]dto.MembershipSummary, error) {
	var result []dto.MembershipSummary
	err := s.db.WithContext(ctx).
		Model(&entity.ClubMember{}).
		Select("club_id, status, role").
		Where("user_id = ?", userID).
		Scan(&result).Error
	return result, err
}

func (s *ClubMemberRepository) GetApplicants(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error) {
	return s.memberInfo(ctx, "club_members.club_id = ? AND club_members.status = ?", clubID, entity.MembershipPending)
}

func (s *ClubMemberRepository) GetActiveMembers(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error) {
	return s.memberInfo(ctx, "club_members.club_id = ? AND club_members.status = ?", clubID, entity.MembershipActive)
}

func (s *ClubMemberRepository) GetLeaders(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error) {
	return s.memberInfo(ctx, "club_members.club_id = ? AND club_members.role IN ?", clubID,
		[]entity.ClubRole{entity.ClubRoleAdmin, entity.ClubRoleModerator})
}

func (s *ClubMemberRepository) memberInfo(ctx context.Context, cond string, args ...interface{}) ([]dto.ClubMemberInfo, error) {
	type rawMember struct {
		MembershipID string                  `gorm:"column:membership_id"`
		ClubID       string                  `gorm:"column:club_id"`
		UserID       string                  `gorm:"column:user_id"`
		Status       entity.MembershipStatus `gorm:"column:status"`
		Role         entity.ClubRole         `gorm:"column:role"`
		Username     string                  `gorm:"column:username"`
		FullName     string                  `gorm:"column:full_name"`
		AvatarURL    string                  `gorm:"column:avatar_url"`
		Bio          string                  `gorm:"column:bio"`
		TechStack    string                  `gorm:"column:tech_stack"`
	}

	var rawResult []rawMember
	err := s.db.WithContext(ctx).
		Table("club_members").
		Select("club_members.id AS membership_id, club_members.club_id, club_members.user_id, club_members.status, club_members.role, profiles.username, profiles.full_name, profiles.avatar_url, profiles.bio, profiles.tech_stack").
		Joins("LEFT JOIN profiles ON profiles.user_id = club_members.user_id").
		Where(cond, args...).
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.ClubMemberInfo, len(rawResult))
	for i, raw := range rawResult {
		info := dto.ClubMemberInfo{
			MembershipID: raw.MembershipID,
			ClubID:       raw.ClubID,
			UserID:       raw.UserID,
			Status:       raw.Status,
			Role:         raw.Role,
			Username:     raw.Username,
			FullName:     raw.FullName,
			AvatarURL:    raw.AvatarURL,
			Bio:          raw.Bio,
		}
		if raw.TechStack != "" {
			if err := info.TechStack.Scan(raw.TechStack); err != nil {
				return nil, err
			}
		}
		result[i] = info
	}

	return result, nil
}
