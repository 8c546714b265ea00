package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{
		db: db,
	}
}

func (s *TeamRepository) CreateWithCaptain(ctx context.Context, team *entity.Team) (*entity.Team, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		return tx.Create(&entity.TeamMember{
			TeamID: team.ID,
			UserID: team.CaptainID,
			Role:   entity.TeamRoleCaptain,
		}).Error
	})
	return team, err
}

func (s *TeamRepository) Get(ctx context.Context, id string) (*entity.Team, error) {
	var team entity.Team
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&team).Error
	return &team, err
}

func (s *TeamRepository) GetAll(ctx context.Context) ([]entity.Team, error) {
	var teams []entity.Team
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&teams).Error
	return teams, err
}

func (s *TeamRepository) Update(ctx context.Context, team *entity.Team) (*entity.Team, error) {
	err := s.db.WithContext(ctx).Save(team).Error
	return team, err
}

func (s *TeamRepository) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&entity.TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&entity.TeamInvitation{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Team{}).Error
	})
}

func (s *TeamRepository) GetByUserID(ctx context.Context, userID string) (*entity.Team, error) {
	var team entity.Team
	err := s.db.WithContext(ctx).
		Table("teams").
		Select("teams.*").
		Joins("INNER JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND team_members.status = ?", userID, "active").
		First(&team).Error
	return &team, err
}

func (s *TeamRepository) GetMembers(ctx context.Context, teamID string) ([]dto.TeamMemberInfo, error) {
	type rawMember struct {
		UserID       string          `gorm:"column:user_id"`
		Role         entity.TeamRole `gorm:"column:role"`
		Username     string          `gorm:"column:username"`
		FullName     string          `gorm:"column:full_name"`
		AvatarURL    string          `gorm:"column:avatar_url"`
		Bio          string          `gorm:"column:bio"`
		TechStack    string          `gorm:"column:tech_stack"`
		GitHubHandle string          `gorm:"column:github_handle"`
		GlobalXP     int             `gorm:"column:global_xp"`
	}

	var rawResult []rawMember
	err := s.db.WithContext(ctx).
		Table("team_members").
		Select("team_members.user_id, team_members.role, profiles.username, profiles.full_name, profiles.avatar_url, profiles.bio, profiles.tech_stack, profiles.github_handle, profiles.global_xp").
		Joins("LEFT JOIN profiles ON profiles.user_id = team_members.user_id").
		Where("team_members.team_id = ?", teamID).
		Order("team_members.created_at ASC").
		Scan(&rawResult).Error
	if err != nil {
		return nil, err
	}

	result := make([]dto.TeamMemberInfo, len(rawResult))
	for i, raw := range rawResult {
		info := dto.TeamMemberInfo{
			UserID:       raw.UserID,
			Role:         raw.Role,
			Username:     raw.Username,
			FullName:     raw.FullName,
			AvatarURL:    raw.AvatarURL,
			Bio:          raw.Bio,
			GitHubHandle: raw.GitHubHandle,
			GlobalXP:     raw.GlobalXP,
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

func (s *TeamRepository) GetMember(ctx context.Context, teamID, userID string) (*entity.TeamMember, error) {
	var member entity.TeamMember
	err := s.db.WithContext(ctx).Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error
	return &member, err
}

func (s *TeamRepository) RemoveMember(ctx context.Context, teamID, userID string) error {
	return s.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&entity.TeamMember{}).Error
}

func (s *TeamRepository) TopByEvent(ctx context.Context, eventID string, limit int) ([]dto.TeamScore, error) {
	var result []dto.TeamScore
	err := s.db.WithContext(ctx).
		Table("teams").
		Select("teams.name, teams.event_score, teams.repo_link").
		Where("teams.event_id = ?", eventID).
		Order("teams.event_score DESC").
		Limit(limit).
		Scan(&result).Error
	return result, err
}
