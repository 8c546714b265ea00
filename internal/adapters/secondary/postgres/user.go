package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (s *UserRepository) CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (s *UserRepository) Get(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return &user, err
}

func (s *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (s *UserRepository) GetByGitHubID(ctx context.Context, githubID string) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Where("github_id = ?", githubID).First(&user).Error
	return &user, err
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (s *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	var profile entity.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (s *ProfileRepository) Update(ctx context.Context, profile *entity.Profile) (*entity.Profile, error) {
	err := s.db.WithContext(ctx).Save(profile).Error
	return profile, err
}

func (s *ProfileRepository) Search(ctx context.Context, query string, limit int) ([]dto.ProfileSummary, error) {
	var result []dto.ProfileSummary
	err := s.db.WithContext(ctx).
		Table("profiles").
		Select("profiles.user_id, profiles.username, profiles.full_name, profiles.avatar_url").
		Where("profiles.username LIKE ?", "%"+query+"%").
		Limit(limit).
		Scan(&result).Error
	return result, err
}

func (s *ProfileRepository) Top(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	var result []dto.LeaderboardEntry
	err := s.db.WithContext(ctx).
		Table("profiles").
		Select("profiles.username, profiles.full_name, profiles.avatar_url, profiles.global_xp, profiles.badges").
		Order("profiles.global_xp DESC").
		Limit(limit).
		Scan(&result).Error
	return result, err
}
