package dto

// ProfileUpdate carries the owner-editable profile fields; nil means "leave
// unchanged".
type ProfileUpdate struct {
	FullName     *string   `json:"full_name,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	GitHubHandle *string   `json:"github_handle,omitempty"`
	TechStack    *[]string `json:"tech_stack,omitempty"`
}
