package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationInvite        NotificationType = "invite"
	NotificationApplication   NotificationType = "application"
	NotificationEventReminder NotificationType = "event_reminder"
)

// Notification is a durable per-recipient inbox record. Invite and
// application notifications carry the payload IDs needed to resolve them.
type Notification struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string           `gorm:"type:uuid;not null;index"`
	Type      NotificationType `gorm:"type:varchar(30);not null"`
	Message   string
	Data      json.RawMessage `gorm:"type:jsonb"`
	IsRead    bool            `gorm:"default:false"`
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// NotificationData is the payload stored in Notification.Data for invites
// and applications.
type NotificationData struct {
	TeamID      string `json:"team_id,omitempty"`
	CandidateID string `json:"candidate_id,omitempty"`
	EventID     string `json:"event_id,omitempty"`
}
