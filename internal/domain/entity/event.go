package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Event struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// ClubID is nil for global events.
	ClubID      *string `gorm:"type:uuid;index"`
	CreatedBy   string  `gorm:"type:uuid;not null"`
	Title       string  `gorm:"not null"`
	Description string
	Location    string
	StartAt     time.Time `gorm:"not null;index"`
	EndAt       time.Time
	// MaxCapacity of 0 means unlimited.
	MaxCapacity int    `gorm:"default:0"`
	IsPublic    bool   `gorm:"default:true"`
	IsOnline    bool   `gorm:"default:false"`
	EventType   string `gorm:"default:'workshop'"`
}

func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// RegistrationFieldType is the catalog of selectable form fields.
type RegistrationFieldType struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time
	Name         string `gorm:"not null;unique"`
	Label        string
	InputType    string         `gorm:"not null;default:'text'"`
	Options      pq.StringArray `gorm:"type:text[]"`
	DisplayOrder int            `gorm:"default:0"`
}

func (t *RegistrationFieldType) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// EventRegistrationField links a field type to an event, defining the shape
// of EventRegistration.FormData for that event.
type EventRegistrationField struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time
	EventID      string `gorm:"type:uuid;not null;uniqueIndex:idx_event_field"`
	FieldTypeID  string `gorm:"type:uuid;not null;uniqueIndex:idx_event_field"`
	DisplayOrder int    `gorm:"default:0"`
	IsRequired   bool   `gorm:"default:true"`
}

func (f *EventRegistrationField) BeforeCreate(_ *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationAttended   RegistrationStatus = "attended"
)

// EventRegistration ties a profile to an event. At most one row per
// (event, user); re-registering overwrites FormData via upsert.
type EventRegistration struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
	EventID   string             `gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	UserID    string             `gorm:"type:uuid;not null;uniqueIndex:idx_event_user"`
	Status    RegistrationStatus `gorm:"type:varchar(20);not null;default:'registered'"`
	FormData  json.RawMessage    `gorm:"type:jsonb"`
	// RemindedAt marks that the pre-event reminder notification was created.
	RemindedAt *time.Time
}

func (r *EventRegistration) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type EventRSVP struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	EventID   string `gorm:"type:uuid;not null;uniqueIndex:idx_rsvp_event_user"`
	UserID    string `gorm:"type:uuid;not null;uniqueIndex:idx_rsvp_event_user"`
	Status    string `gorm:"type:varchar(20);not null;default:'going'"`
}

func (r *EventRSVP) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
