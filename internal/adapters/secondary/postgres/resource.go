package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/entity"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{
		db: db,
	}
}

func (s *ResourceRepository) Create(ctx context.Context, r *entity.Resource) (*entity.Resource, error) {
	err := s.db.WithContext(ctx).Create(r).Error
	return r, err
}

func (s *ResourceRepository) GetAll(ctx context.Context, category string) ([]entity.Resource, error) {
	var resources []entity.Resource
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&resources).Error
	return resources, err
}
