package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/domain/utils/validator"
	"github.com/campushub/backend/internal/ports/secondary"
)

type ProjectService struct {
	projectRepo secondary.ProjectRepository
	repoFetcher secondary.RepoMetadataFetcher
}

func NewProjectService(projectRepo secondary.ProjectRepository, repoFetcher secondary.RepoMetadataFetcher) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		repoFetcher: repoFetcher,
	}
}

func (s *ProjectService) List(ctx context.Context, viewerID string) ([]dto.ProjectInfo, error) {
	return s.projectRepo.GetAll(ctx, viewerID)
}

func (s *ProjectService) Submit(ctx context.Context, userID string, p *entity.Project) (*entity.Project, error) {
	if p.Title == "" {
		return nil, fmt.Errorf("%w: title is required", errorz.ErrValidation)
	}
	if !validator.Link(p.RepoURL) || !validator.Link(p.DemoURL) {
		return nil, fmt.Errorf("%w: invalid project link", errorz.ErrValidation)
	}

	p.UserID = userID
	return s.projectRepo.Create(ctx, p)
}

func (s *ProjectService) Like(ctx context.Context, projectID, userID string) error {
	if _, err := s.projectRepo.Get(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrNotFound
		}
		return err
	}

	err := s.projectRepo.Like(ctx, projectID, userID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorz.ErrAlreadyLiked
	}
	return err
}

func (s *ProjectService) Unlike(ctx context.Context, projectID, userID string) error {
	return s.projectRepo.Unlike(ctx, projectID, userID)
}

func (s *ProjectService) RepoDetails(ctx context.Context, repoURL string) (*dto.RepoDetails, error) {
	return s.repoFetcher.Fetch(ctx, repoURL)
}
