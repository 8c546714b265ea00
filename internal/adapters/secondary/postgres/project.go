package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

func (s *ProjectRepository) Create(ctx context.Context, p *entity.Project) (*entity.Project, error) {
	err := s.db.WithContext(ctx).Create(p).Error
	return p, err
}

func (s *ProjectRepository) Get(ctx context.Context, id string) (*entity.Project, error) {
	var project entity.Project
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	return &project, err
}

func (s *ProjectRepository) GetAll(ctx context.Context, viewerID string) ([]dto.ProjectInfo, error) {
	type rawProject struct {
		ID          string    `gorm:"column:id"`
		CreatedAt   time.Time `gorm:"column:created_at"`
		UpdatedAt   time.Time `gorm:"column:updated_at"`
		UserID      string    `gorm:"column:user_id"`
		Title       string    `gorm:"column:title"`
		Description string    `gorm:"column:description"`
		RepoURL     string    `gorm:"column:repo_url"`
		DemoURL     string    `gorm:"column:demo_url"`
		TechTags    string    `gorm:"column:tech_tags"`
		LikesCount  int       `gorm:"column:likes_count"`
		Username    string    `gorm:"column:username"`
		AvatarURL   string    `gorm:"column:avatar_url"`
		Liked       bool      `gorm:"column:liked"`
	}

	query := s.db.WithContext(ctx).
		Table("projects").
		Joins("LEFT JOIN profiles ON profiles.user_id = projects.user_id").
		Order("projects.likes_count DESC, projects.created_at DESC")

	if viewerID != "" {
		query = query.Select(
			"projects.*, profiles.username, profiles.avatar_url, "+
				"(SELECT COUNT(*) FROM project_likes WHERE project_likes.project_id = projects.id AND project_likes.user_id = ?) > 0 AS liked",
			viewerID,
		)
	} else {
		query = query.Select("projects.*, profiles.username, profiles.avatar_url, false AS liked")
	}

	var rawResult []rawProject
	if err := query.Scan(&rawResult).Error; err != nil {
		return nil, err
	}

	result := make([]dto.ProjectInfo, len(rawResult))
	for i, raw := range rawResult {
		info := dto.ProjectInfo{
			Project: entity.Project{
				ID:          raw.ID,
				CreatedAt:   raw.CreatedAt,
				UpdatedAt:   raw.UpdatedAt,
				UserID:      raw.UserID,
				Title:       raw.Title,
				Description: raw.Description,
				RepoURL:     raw.RepoURL,
				DemoURL:     raw.DemoURL,
				LikesCount:  raw.LikesCount,
			},
			Username:  raw.Username,
			AvatarURL: raw.AvatarURL,
			Liked:     raw.Liked,
		}
		if raw.TechTags != "" {
			if err := info.TechTags.Scan(raw.TechTags); err != nil {
				return nil, err
			}
		}
		result[i] = info
	}
	return result, nil
}

func (s *ProjectRepository) Like(ctx context.Context, projectID, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entity.ProjectLike{
			ProjectID: projectID,
			UserID:    userID,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Project{}).
			Where("id = ?", projectID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error
	})
}

func (s *ProjectRepository) Unlike(ctx context.Context, projectID, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("project_id = ? AND user_id = ?", projectID, userID).
			Delete(&entity.ProjectLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&entity.Project{}).
			Where("id = ? AND likes_count > 0", projectID).
			Update("likes_count", gorm.Expr("likes_count - 1")).Error
	})
}
