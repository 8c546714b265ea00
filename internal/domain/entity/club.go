package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Club struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null;unique"`
	Description string
	Category    string
	BannerURL   string
}

func (c *Club) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type MembershipStatus string

const (
	MembershipPending MembershipStatus = "pending"
	MembershipActive  MembershipStatus = "active"
)

type ClubRole string

const (
	ClubRoleMember    ClubRole = "member"
	ClubRoleModerator ClubRole = "moderator"
	ClubRoleAdmin     ClubRole = "admin"
)

// ClubMember ties a profile to a club. At most one row per (club, user),
// enforced by the unique index.
type ClubMember struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ClubID    string           `gorm:"type:uuid;not null;uniqueIndex:idx_club_user"`
	UserID    string           `gorm:"type:uuid;not null;uniqueIndex:idx_club_user"`
	Status    MembershipStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Role      ClubRole         `gorm:"type:varchar(20);not null;default:'member'"`
}

func (m *ClubMember) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// ClubAnnouncement is visible to active members only; the visibility rule
// lives in the club service.
type ClubAnnouncement struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ClubID    string `gorm:"type:uuid;not null;index"`
	AuthorID  string `gorm:"type:uuid;not null"`
	Title     string `gorm:"not null"`
	Content   string
}

func (a *ClubAnnouncement) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
