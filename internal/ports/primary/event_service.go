package primary

import (
	"context"
	"encoding/json"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
)

// EventService defines the interface for event and registration use cases
type EventService interface {
	Create(ctx context.Context, actorID string, event *entity.Event, fieldTypeIDs []string) (*entity.Event, error)
	Delete(ctx context.Context, actorID, eventID string) error
	ClubEvents(ctx context.Context, clubID, viewerID string) ([]dto.EventWithStats, error)
	GlobalEvents(ctx context.Context, viewerID string) ([]dto.EventWithStats, error)
	FieldTypes(ctx context.Context) ([]entity.RegistrationFieldType, error)
	EventFields(ctx context.Context, eventID string) ([]dto.EventField, error)

	Register(ctx context.Context, eventID, userID string, formData json.RawMessage) error
	Cancel(ctx context.Context, eventID, userID string) error
	Attendees(ctx context.Context, actorID, eventID string) ([]dto.Attendee, error)
	// MarkPresent flips the registration to attended and credits XP once.
	// Returns false when the user was already checked in.
	MarkPresent(ctx context.Context, actorID, eventID, userID string) (bool, error)
	ToggleRSVP(ctx context.Context, eventID, userID, status string) error

	CalendarICS(ctx context.Context) ([]byte, error)
	AttendeesXLSX(ctx context.Context, actorID, eventID string) ([]byte, error)
	CheckInQR(ctx context.Context, actorID, eventID string) ([]byte, error)
}
