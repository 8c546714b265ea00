package service

import (
	"context"
	"fmt"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/domain/utils/validator"
	"github.com/campushub/backend/internal/ports/secondary"
)

type ResourceService struct {
	resourceRepo secondary.ResourceRepository
}

func NewResourceService(resourceRepo secondary.ResourceRepository) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
	}
}

func (s *ResourceService) List(ctx context.Context, category string) ([]entity.Resource, error) {
	return s.resourceRepo.GetAll(ctx, category)
}

func (s *ResourceService) Add(ctx context.Context, userID string, r *entity.Resource) (*entity.Resource, error) {
	if r.Title == "" {
		return nil, fmt.Errorf("%w: title is required", errorz.ErrValidation)
	}
	if r.URL == "" || !validator.Link(r.URL) {
		return nil, fmt.Errorf("%w: a valid url is required", errorz.ErrValidation)
	}

	r.UserID = userID
	return s.resourceRepo.Create(ctx, r)
}
