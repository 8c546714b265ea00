package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// User is the authentication account. Profile holds everything the rest of
// the application reads; User is only touched by the auth flow.
type User struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string `gorm:"not null;unique"`
	PasswordHash string `json:"-"`
	// GitHubID is set for accounts created through the OAuth flow.
	GitHubID string `gorm:"column:github_id;index"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Profile struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UserID       string `gorm:"type:uuid;not null;uniqueIndex"`
	Username     string `gorm:"not null;unique"`
	FullName     string
	Bio          string
	AvatarURL    string
	GitHubHandle string         `gorm:"column:github_handle"`
	TechStack    pq.StringArray `gorm:"type:text[]"`
	Badges       pq.StringArray `gorm:"type:text[]"`
	GlobalXP     int            `gorm:"default:0"`
	IsSuperAdmin bool           `gorm:"default:false"`
}

func (p *Profile) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
