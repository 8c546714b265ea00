package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Team struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null"`
	Description string
	CaptainID   string         `gorm:"type:uuid;not null"`
	RepoLink    string
	Tags        pq.StringArray `gorm:"type:text[]"`
	// EventID links hackathon teams to their event for the live board.
	EventID    *string `gorm:"type:uuid;index"`
	EventScore int     `gorm:"default:0"`
}

func (t *Team) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type TeamRole string

const (
	TeamRoleCaptain TeamRole = "captain"
	TeamRoleMember  TeamRole = "member"
)

type TeamMember struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	TeamID    string           `gorm:"type:uuid;not null;uniqueIndex:idx_team_user"`
	UserID    string           `gorm:"type:uuid;not null;uniqueIndex:idx_team_user"`
	Role      TeamRole         `gorm:"type:varchar(20);not null;default:'member'"`
	Status    MembershipStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

func (m *TeamMember) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// TeamInvitation is the pending (team, candidate) pair. It is the source of
// truth for "already invited"; the matching inbox Notification is written in
// the same transaction.
type TeamInvitation struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	TeamID    string `gorm:"type:uuid;not null;uniqueIndex:idx_team_invite"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_team_invite"`
}

func (i *TeamInvitation) BeforeCreate(_ *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
