package dto

import "github.com/campushub/backend/internal/domain/entity"

// ProjectInfo is a showcase project joined with its author summary.
type ProjectInfo struct {
	entity.Project
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	// Liked reports whether the requesting user has liked the project.
	Liked bool `json:"liked"`
}

// RepoDetails is public metadata for a linked GitHub repository.
type RepoDetails struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stars       int      `json:"stars"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	LastUpdated string   `json:"last_updated"`
}
