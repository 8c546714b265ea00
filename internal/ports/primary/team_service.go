package primary

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// TeamService defines the interface for team formation use cases
type TeamService interface {
	Create(ctx context.Context, userID, name, description string, tags []string) (*entity.Team, error)
	MyTeam(ctx context.Context, userID string) (*entity.Team, error)
	List(ctx context.Context) ([]entity.Team, error)
	Members(ctx context.Context, teamID string) ([]dto.TeamMemberInfo, error)
	Update(ctx context.Context, actorID, teamID, name, description string) error
	Delete(ctx context.Context, actorID, teamID string) error
	Kick(ctx context.Context, actorID, teamID, userID string) error

	RequestToJoin(ctx context.Context, teamID, candidateID string) error
	Invite(ctx context.Context, actorID, teamID, candidateID string) error
	PendingInvites(ctx context.Context, actorID, teamID string) ([]string, error)
	AcceptInvite(ctx context.Context, userID, notificationID, teamID string) error
	RejectInvite(ctx context.Context, userID, notificationID, teamID string) error
	AcceptApplication(ctx context.Context, actorID, notificationID, teamID, candidateID string) error
}
