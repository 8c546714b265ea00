package dto

import (
	"encoding/json"
	"time"

	"github.com/campushub/backend/internal/domain/entity"
)

// EventWithStats is an event decorated with the caller's registration status
// and the current attendee count.
type EventWithStats struct {
	entity.Event
	ClubName       string                    `json:"club_name,omitempty"`
	ClubBanner     string                    `json:"club_banner,omitempty"`
	AttendeesCount int64                     `json:"attendees_count"`
	MyStatus       entity.RegistrationStatus `json:"my_status,omitempty"`
}

// EventField is a registration field link joined with its catalog entry.
type EventField struct {
	entity.RegistrationFieldType
	IsRequired   bool `json:"is_required"`
	DisplayOrder int  `json:"display_order"`
}

// ReminderItem is a registration due for a pre-event reminder.
type ReminderItem struct {
	RegistrationID string
	UserID         string
	EventID        string
	EventTitle     string
	StartAt        time.Time
}

// Attendee is a registration joined with its profile summary, for the admin
// check-in list.
type Attendee struct {
	RegistrationID string                    `json:"registration_id"`
	UserID         string                    `json:"user_id"`
	Status         entity.RegistrationStatus `json:"status"`
	FormData       json.RawMessage           `json:"form_data,omitempty"`
	Username       string                    `json:"username"`
	FullName       string                    `json:"full_name"`
	AvatarURL      string                    `json:"avatar_url"`
	GlobalXP       int                       `json:"global_xp"`
}
