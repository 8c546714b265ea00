package secondary

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// ClubRepository defines the interface for club data access
type ClubRepository interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id string) error
}

// ClubMemberRepository defines the interface for club membership data access
type ClubMemberRepository interface {
	Create(ctx context.Context, member *entity.ClubMember) (*entity.ClubMember, error)
	GetByID(ctx context.Context, id string) (*entity.ClubMember, error)
	Get(ctx context.Context, clubID, userID string) (*entity.ClubMember, error)
	UpdateStatus(ctx context.Context, id string, status entity.MembershipStatus) error
	Delete(ctx context.Context, id string) error
	// Upsert creates or updates the (club, user) membership in one statement,
	// used for leadership appointment.
	Upsert(ctx context.Context, member *entity.ClubMember) error
	GetByUserID(ctx context.Context, userID string) ([]dto.MembershipSummary, error)
	GetApplicants(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error)
	GetActiveMembers(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error)
	GetLeaders(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error)
}

// AnnouncementRepository defines the interface for club announcement data access
type AnnouncementRepository interface {
	Create(ctx context.Context, a *entity.ClubAnnouncement) (*entity.ClubAnnouncement, error)
	GetByClubID(ctx context.Context, clubID string) ([]dto.Announcement, error)
}
