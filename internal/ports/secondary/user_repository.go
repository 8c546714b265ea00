package secondary

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// UserRepository defines the interface for auth account data access
type UserRepository interface {
	// CreateWithProfile creates the account and its profile in one transaction.
	CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.Profile) error
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByGitHubID(ctx context.Context, githubID string) (*entity.User, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) (*entity.Profile, error)
	Search(ctx context.Context, query string, limit int) ([]dto.ProfileSummary, error)
	// Top returns the highest-XP profiles for the global leaderboard.
	Top(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error)
}
