package secondary

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// ResourceRepository defines the interface for shared resource data access
type ResourceRepository interface {
	Create(ctx context.Context, r *entity.Resource) (*entity.Resource, error)
	GetAll(ctx context.Context, category string) ([]entity.Resource, error)
}

// ProjectRepository defines the interface for showcase project data access
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) (*entity.Project, error)
	Get(ctx context.Context, id string) (*entity.Project, error)
	// GetAll returns projects by like count, annotated with the viewer's like
	// state when viewerID is non-empty.
	GetAll(ctx context.Context, viewerID string) ([]dto.ProjectInfo, error)
	// Like inserts the like row and bumps the counter in one transaction.
	Like(ctx context.Context, projectID, userID string) error
	// Unlike removes the like row and drops the counter in one transaction.
	Unlike(ctx context.Context, projectID, userID string) error
}

// PollRepository defines the interface for poll vote data access
type PollRepository interface {
	Get(ctx context.Context, id string) (*entity.Poll, error)
	CreateVote(ctx context.Context, v *entity.PollVote) error
	Results(ctx context.Context, pollID string) (map[string]int64, error)
}
