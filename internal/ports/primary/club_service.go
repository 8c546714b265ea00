package primary

import (
	"context"
	"io"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// ClubService defines the interface for club and membership use cases
type ClubService interface {
	List(ctx context.Context) ([]entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	Create(ctx context.Context, actorID string, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, actorID, clubID string) error
	SetBanner(ctx context.Context, actorID, clubID string, reader io.Reader, size int64, contentType string) (string, error)

	Apply(ctx context.Context, clubID, userID string) error
	ProcessApplication(ctx context.Context, actorID, membershipID, action string) error
	AssignRole(ctx context.Context, actorID, clubID, userID string, role entity.ClubRole) error
	RemoveLeader(ctx context.Context, actorID, membershipID string) error

	MyMembership(ctx context.Context, clubID, userID string) (*entity.ClubMember, error)
	MyMemberships(ctx context.Context, userID string) ([]dto.MembershipSummary, error)
	Applicants(ctx context.Context, actorID, clubID string) ([]dto.ClubMemberInfo, error)
	Members(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error)
	Leaders(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error)

	PostAnnouncement(ctx context.Context, actorID, clubID, title, content string) error
	Announcements(ctx context.Context, userID, clubID string) ([]dto.Announcement, error)

	// RequireRole fails with ErrForbidden unless the user holds one of the
	// given active roles in the club (super-admins always pass).
	RequireRole(ctx context.Context, clubID, userID string, roles ...entity.ClubRole) error
}
