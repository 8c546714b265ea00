package secondary

import (
	"context"
	"time"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// CreateWithFields creates the event and its registration field links in
	// one transaction.
	CreateWithFields(ctx context.Context, event *entity.Event, fieldTypeIDs []string) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	// Delete removes the event, its registrations, field links and RSVPs.
	Delete(ctx context.Context, id string) error
	GetByClubID(ctx context.Context, clubID, viewerID string) ([]dto.EventWithStats, error)
	GetGlobal(ctx context.Context, viewerID string) ([]dto.EventWithStats, error)
	GetUpcomingPublic(ctx context.Context, from time.Time) ([]entity.Event, error)
	FieldTypes(ctx context.Context) ([]entity.RegistrationFieldType, error)
	EventFields(ctx context.Context, eventID string) ([]dto.EventField, error)
}

// RegistrationRepository defines the interface for event registration data access
type RegistrationRepository interface {
	// Register upserts the (event, user) registration, enforcing the event's
	// capacity inside the transaction for new rows.
	Register(ctx context.Context, reg *entity.EventRegistration) error
	Get(ctx context.Context, eventID, userID string) (*entity.EventRegistration, error)
	Delete(ctx context.Context, eventID, userID string) error
	CountByEventID(ctx context.Context, eventID string) (int64, error)
	GetAttendees(ctx context.Context, eventID string) ([]dto.Attendee, error)
	// MarkAttended flips a registered row to attended and credits XP in one
	// transaction. Returns false when the row was already attended.
	MarkAttended(ctx context.Context, eventID, userID string, xp int) (bool, error)
	GetDueReminders(ctx context.Context, until time.Time) ([]dto.ReminderItem, error)
	// MarkReminded records the reminder notification and stamps the
	// registration in one transaction.
	MarkReminded(ctx context.Context, registrationID string, n *entity.Notification) error
	UpsertRSVP(ctx context.Context, rsvp *entity.EventRSVP) error
	DeleteRSVP(ctx context.Context, eventID, userID string) error
}
