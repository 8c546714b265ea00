package dto

import (
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/lib/pq"
)

// TeamMemberInfo is a team membership joined with its profile summary.
type TeamMemberInfo struct {
	UserID       string          `json:"user_id"`
	Role         entity.TeamRole `json:"role"`
	Username     string          `json:"username"`
	FullName     string          `json:"full_name"`
	AvatarURL    string          `json:"avatar_url"`
	Bio          string          `json:"bio"`
	TechStack    pq.StringArray  `json:"tech_stack"`
	GitHubHandle string          `json:"github_handle"`
	GlobalXP     int             `json:"global_xp"`
}

// ProfileSummary backs user search results for invites.
type ProfileSummary struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}
