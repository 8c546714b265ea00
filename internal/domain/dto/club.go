package dto

import (
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/lib/pq"
)

// ClubMemberInfo is a membership row joined with its profile summary.
type ClubMemberInfo struct {
	MembershipID string                  `json:"membership_id"`
	ClubID       string                  `json:"club_id"`
	UserID       string                  `json:"user_id"`
	Status       entity.MembershipStatus `json:"status"`
	Role         entity.ClubRole         `json:"role"`
	Username     string                  `json:"username"`
	FullName     string                  `json:"full_name"`
	AvatarURL    string                  `json:"avatar_url"`
	Bio          string                  `json:"bio"`
	TechStack    pq.StringArray          `json:"tech_stack"`
}

// MembershipSummary backs the "which clubs am I in" button toggles.
type MembershipSummary struct {
	ClubID string                  `json:"club_id"`
	Status entity.MembershipStatus `json:"status"`
	Role   entity.ClubRole         `json:"role"`
}

// Announcement is an announcement joined with its author summary.
type Announcement struct {
	entity.ClubAnnouncement
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar"`
}
