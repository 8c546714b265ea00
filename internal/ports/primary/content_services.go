package primary

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// LeaderboardService defines the interface for leaderboard reads
type LeaderboardService interface {
	Global(ctx context.Context) ([]dto.LeaderboardEntry, error)
	Event(ctx context.Context, eventID string) ([]dto.TeamScore, error)
}

// ResourceService defines the interface for the shared resource library
type ResourceService interface {
	List(ctx context.Context, category string) ([]entity.Resource, error)
	Add(ctx context.Context, userID string, r *entity.Resource) (*entity.Resource, error)
}

// ProjectService defines the interface for the project showcase
type ProjectService interface {
	List(ctx context.Context, viewerID string) ([]dto.ProjectInfo, error)
	Submit(ctx context.Context, userID string, p *entity.Project) (*entity.Project, error)
	Like(ctx context.Context, projectID, userID string) error
	Unlike(ctx context.Context, projectID, userID string) error
	RepoDetails(ctx context.Context, repoURL string) (*dto.RepoDetails, error)
}

// PollService defines the interface for poll voting
type PollService interface {
	Vote(ctx context.Context, pollID, userID, optionID string) error
	Results(ctx context.Context, pollID string) (map[string]int64, error)
}
