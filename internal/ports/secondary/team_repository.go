package secondary

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// CreateWithCaptain creates the team and the captain's membership in one
	// transaction.
	CreateWithCaptain(ctx context.Context, team *entity.Team) (*entity.Team, error)
	Get(ctx context.Context, id string) (*entity.Team, error)
	GetAll(ctx context.Context) ([]entity.Team, error)
	Update(ctx context.Context, team *entity.Team) (*entity.Team, error)
	Delete(ctx context.Context, id string) error
	// GetByUserID returns the user's active team, if any.
	GetByUserID(ctx context.Context, userID string) (*entity.Team, error)
	GetMembers(ctx context.Context, teamID string) ([]dto.TeamMemberInfo, error)
	GetMember(ctx context.Context, teamID, userID string) (*entity.TeamMember, error)
	RemoveMember(ctx context.Context, teamID, userID string) error
	TopByEvent(ctx context.Context, eventID string, limit int) ([]dto.TeamScore, error)
}

// TeamInvitationRepository defines the interface for the invitation queue.
// The accept/reject operations each run as a single transaction so that a
// partial failure can never leave the membership, invitation and inbox rows
// disagreeing.
type TeamInvitationRepository interface {
	// CreateWithNotification writes the invitation row and its inbox
	// notification atomically.
	CreateWithNotification(ctx context.Context, invite *entity.TeamInvitation, n *entity.Notification) error
	GetPendingUserIDs(ctx context.Context, teamID string) ([]string, error)
	// Accept consumes the invitation, inserts the membership and marks the
	// notification read. Fails with ErrNotFound when no invitation exists
	// and ErrAlreadyInTeam when the user already has an active team.
	Accept(ctx context.Context, teamID, userID, notificationID string) error
	// Reject deletes the invitation and marks the notification read.
	Reject(ctx context.Context, teamID, userID, notificationID string) error
	// AcceptApplication inserts the membership and marks the captain's
	// application notification read.
	AcceptApplication(ctx context.Context, teamID, captainID, candidateID, notificationID string) error
}
