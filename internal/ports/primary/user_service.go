package primary

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// UserService defines the interface for account and profile use cases
type UserService interface {
	// Register creates the account and its profile atomically.
	Register(ctx context.Context, email, password, username, fullName string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// GetOrCreateFromGitHub resolves an OAuth login to a local account,
	// provisioning one on first sight.
	GetOrCreateFromGitHub(ctx context.Context, githubID, email, login, name, avatarURL string) (*entity.User, error)
	MyProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpdateMyProfile(ctx context.Context, userID string, upd dto.ProfileUpdate) (*entity.Profile, error)
	Search(ctx context.Context, query string) ([]dto.ProfileSummary, error)
	IsSuperAdmin(ctx context.Context, userID string) (bool, error)
}
