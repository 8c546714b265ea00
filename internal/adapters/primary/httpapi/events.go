package httpapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/ports/primary"
)

type EventHandler struct {
	eventService primary.EventService
}

func NewEventHandler(eventService primary.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

type createEventRequest struct {
	Body struct {
		ClubID       *string   `json:"club_id,omitempty" doc:"Owning club; omit for a global event"`
		Title        string    `json:"title"`
		Description  string    `json:"description,omitempty"`
		Location     string    `json:"location,omitempty"`
		StartAt      time.Time `json:"start_at"`
		EndAt        time.Time `json:"end_at,omitempty"`
		MaxCapacity  int       `json:"max_capacity,omitempty" doc:"0 means unlimited"`
		IsPublic     bool      `json:"is_public,omitempty"`
		IsOnline     bool      `json:"is_online,omitempty"`
		EventType    string    `json:"event_type,omitempty"`
		FieldTypeIDs []string  `json:"field_type_ids,omitempty" doc:"Registration form field types"`
	}
}

type eventResponse struct {
	Body entity.Event
}

func (h *EventHandler) HandleCreate(ctx context.Context, input *createEventRequest) (*eventResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	event := &entity.Event{
		ClubID:      input.Body.ClubID,
		Title:       input.Body.Title,
		Description: input.Body.Description,
		Location:    input.Body.Location,
		StartAt:     input.Body.StartAt,
		EndAt:       input.Body.EndAt,
		MaxCapacity: input.Body.MaxCapacity,
		IsPublic:    input.Body.IsPublic,
		IsOnline:    input.Body.IsOnline,
		EventType:   input.Body.EventType,
	}

	created, err := h.eventService.Create(ctx, userID, event, input.Body.FieldTypeIDs)
	if err != nil {
		return nil, mapError(err)
	}
	return &eventResponse{Body: *created}, nil
}

type eventRequest struct {
	EventID string `path:"eventID" doc:"Event ID"`
}

func (h *EventHandler) HandleDelete(ctx context.Context, input *eventRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.eventService.Delete(ctx, userID, input.EventID); err != nil {
		return nil, mapError(err)
	}
	return message("event deleted"), nil
}

type clubEventsRequest struct {
	ClubID string `path:"clubID" doc:"Club ID"`
}

type eventListResponse struct {
	Body []dto.EventWithStats
}

func (h *EventHandler) HandleClubEvents(ctx context.Context, input *clubEventsRequest) (*eventListResponse, error) {
	events, err := h.eventService.ClubEvents(ctx, input.ClubID, viewerIDFromContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}
	return &eventListResponse{Body: events}, nil
}

func (h *EventHandler) HandleGlobalEvents(ctx context.Context, _ *struct{}) (*eventListResponse, error) {
	events, err := h.eventService.GlobalEvents(ctx, viewerIDFromContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}
	return &eventListResponse{Body: events}, nil
}

type fieldTypesResponse struct {
	Body []entity.RegistrationFieldType
}

func (h *EventHandler) HandleFieldTypes(ctx context.Context, _ *struct{}) (*fieldTypesResponse, error) {
	fieldTypes, err := h.eventService.FieldTypes(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &fieldTypesResponse{Body: fieldTypes}, nil
}

type eventFieldsResponse struct {
	Body []dto.EventField
}

func (h *EventHandler) HandleEventFields(ctx context.Context, input *eventRequest) (*eventFieldsResponse, error) {
	fields, err := h.eventService.EventFields(ctx, input.EventID)
	if err != nil {
		return nil, mapError(err)
	}
	return &eventFieldsResponse{Body: fields}, nil
}

type registerEventRequest struct {
	EventID string `path:"eventID" doc:"Event ID"`
	Body    struct {
		FormData json.RawMessage `json:"form_data,omitempty" doc:"Answers to the event's registration fields"`
	}
}

func (h *EventHandler) HandleRegister(ctx context.Context, input *registerEventRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.eventService.Register(ctx, input.EventID, userID, input.Body.FormData); err != nil {
		return nil, mapError(err)
	}
	return message("registered"), nil
}

func (h *EventHandler) HandleCancel(ctx context.Context, input *eventRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.eventService.Cancel(ctx, input.EventID, userID); err != nil {
		return nil, mapError(err)
	}
	return message("registration cancelled"), nil
}

type attendeesResponse struct {
	Body []dto.Attendee
}

func (h *EventHandler) HandleAttendees(ctx context.Context, input *eventRequest) (*attendeesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	attendees, err := h.eventService.Attendees(ctx, userID, input.EventID)
	if err != nil {
		return nil, mapError(err)
	}
	return &attendeesResponse{Body: attendees}, nil
}

type markPresentRequest struct {
	EventID string `path:"eventID" doc:"Event ID"`
	Body    struct {
		UserID string `json:"user_id" doc:"Attendee to check in"`
	}
}

type markPresentResponse struct {
	Body struct {
		Credited bool `json:"credited" doc:"False when the attendee was already checked in"`
	}
}

func (h *EventHandler) HandleMarkPresent(ctx context.Context, input *markPresentRequest) (*markPresentResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	credited, err := h.eventService.MarkPresent(ctx, userID, input.EventID, input.Body.UserID)
	if err != nil {
		return nil, mapError(err)
	}

	res := &markPresentResponse{}
	res.Body.Credited = credited
	return res, nil
}

type rsvpRequest struct {
	EventID string `path:"eventID" doc:"Event ID"`
	Body    struct {
		Status string `json:"status" enum:"going,interested,none" doc:"none clears the RSVP"`
	}
}

func (h *EventHandler) HandleRSVP(ctx context.Context, input *rsvpRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.eventService.ToggleRSVP(ctx, input.EventID, userID, input.Body.Status); err != nil {
		return nil, mapError(err)
	}
	return message("rsvp updated"), nil
}
