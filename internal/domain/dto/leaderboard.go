package dto

import "github.com/lib/pq"

type LeaderboardEntry struct {
	Username  string         `json:"username"`
	FullName  string         `json:"full_name"`
	AvatarURL string         `json:"avatar_url"`
	GlobalXP  int            `json:"global_xp"`
	Badges    pq.StringArray `json:"badges"`
}

// TeamScore is a hackathon live-board row.
type TeamScore struct {
	Name       string `json:"name"`
	EventScore int    `json:"event_score"`
	RepoLink   string `json:"repo_link"`
}
