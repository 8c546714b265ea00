package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/domain/utils/calendar"
	"github.com/campushub/backend/internal/ports/primary"
	"github.com/campushub/backend/internal/ports/secondary"
)

type EventService struct {
	eventRepo   secondary.EventRepository
	regRepo     secondary.RegistrationRepository
	clubService primary.ClubService
	userService primary.UserService

	logger *zap.SugaredLogger

	attendanceXP int
	frontendURL  string
}

func NewEventService(
	logger *zap.SugaredLogger,
	eventRepo secondary.EventRepository,
	regRepo secondary.RegistrationRepository,
	clubService primary.ClubService,
	userService primary.UserService,
	attendanceXP int,
	frontendURL string,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		regRepo:      regRepo,
		clubService:  clubService,
		userService:  userService,
		logger:       logger,
		attendanceXP: attendanceXP,
		frontendURL:  frontendURL,
	}
}

func (s *EventService) Create(ctx context.Context, actorID string, event *entity.Event, fieldTypeIDs []string) (*entity.Event, error) {
	if err := s.requireEventManager(ctx, actorID, event.ClubID); err != nil {
		return nil, err
	}
	if event.Title == "" {
		return nil, fmt.Errorf("%w: title is required", errorz.ErrValidation)
	}
	if event.StartAt.IsZero() {
		return nil, fmt.Errorf("%w: start time is required", errorz.ErrValidation)
	}
	if !event.EndAt.IsZero() && event.EndAt.Before(event.StartAt) {
		return nil, fmt.Errorf("%w: event ends before it starts", errorz.ErrValidation)
	}

	event.CreatedBy = actorID
	return s.eventRepo.CreateWithFields(ctx, event, fieldTypeIDs)
}

func (s *EventService) Delete(ctx context.Context, actorID, eventID string) error {
	event, err := s.get(ctx, eventID)
	if err != nil {
		return err
	}
	if err = s.requireEventManager(ctx, actorID, event.ClubID); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, eventID)
}

func (s *EventService) ClubEvents(ctx context.Context, clubID, viewerID string) ([]dto.EventWithStats, error) {
	return s.eventRepo.GetByClubID(ctx, clubID, viewerID)
}

func (s *EventService) GlobalEvents(ctx context.Context, viewerID string) ([]dto.EventWithStats, error) {
	return s.eventRepo.GetGlobal(ctx, viewerID)
}

func (s *EventService) FieldTypes(ctx context.Context) ([]entity.RegistrationFieldType, error) {
	return s.eventRepo.FieldTypes(ctx)
}

func (s *EventService) EventFields(ctx context.Context, eventID string) ([]dto.EventField, error) {
	return s.eventRepo.EventFields(ctx, eventID)
}

func (s *EventService) Register(ctx context.Context, eventID, userID string, formData json.RawMessage) error {
	event, err := s.get(ctx, eventID)
	if err != nil {
		return err
	}
	if time.Now().After(event.StartAt) {
		return errorz.ErrRegistrationEnded
	}

	return s.regRepo.Register(ctx, &entity.EventRegistration{
		EventID:  eventID,
		UserID:   userID,
		Status:   entity.RegistrationRegistered,
		FormData: formData,
	})
}

func (s *EventService) Cancel(ctx context.Context, eventID, userID string) error {
	if _, err := s.regRepo.Get(ctx, eventID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrNotRegistered
		}
		return err
	}
	return s.regRepo.Delete(ctx, eventID, userID)
}

func (s *EventService) Attendees(ctx context.Context, actorID, eventID string) ([]dto.Attendee, error) {
	event, err := s.get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err = s.requireEventManager(ctx, actorID, event.ClubID); err != nil {
		return nil, err
	}
	return s.regRepo.GetAttendees(ctx, eventID)
}

func (s *EventService) MarkPresent(ctx context.Context, actorID, eventID, userID string) (bool, error) {
	event, err := s.get(ctx, eventID)
	if err != nil {
		return false, err
	}
	if err = s.requireEventManager(ctx, actorID, event.ClubID); err != nil {
		return false, err
	}

	credited, err := s.regRepo.MarkAttended(ctx, eventID, userID, s.attendanceXP)
	if err != nil {
		return false, err
	}
	if credited {
		s.logger.Infow("attendance credited",
			"event_id", eventID, "user_id", userID, "xp", s.attendanceXP)
	}
	return credited, nil
}

func (s *EventService) ToggleRSVP(ctx context.Context, eventID, userID, status string) error {
	if _, err := s.get(ctx, eventID); err != nil {
		return err
	}

	switch status {
	case "none":
		return s.regRepo.DeleteRSVP(ctx, eventID, userID)
	case "going", "interested":
		return s.regRepo.UpsertRSVP(ctx, &entity.EventRSVP{
			EventID: eventID,
			UserID:  userID,
			Status:  status,
		})
	default:
		return fmt.Errorf("%w: unknown rsvp status %q", errorz.ErrValidation, status)
	}
}

func (s *EventService) CalendarICS(ctx context.Context) ([]byte, error) {
	events, err := s.eventRepo.GetUpcomingPublic(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	return calendar.ExportEventsToICS(events)
}

func (s *EventService) AttendeesXLSX(ctx context.Context, actorID, eventID string) ([]byte, error) {
	attendees, err := s.Attendees(ctx, actorID, eventID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if errClose := f.Close(); errClose != nil {
			s.logger.Errorf("failed to close xlsx file: %v", errClose)
		}
	}()

	sheetName := "Attendees"
	if err = f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to set sheet name: %w", err)
	}

	headers := []string{"Username", "Full name", "Status", "Form data"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell: %w", err)
		}
	}

	for row, attendee := range attendees {
		data := []any{
			attendee.Username,
			attendee.FullName,
			string(attendee.Status),
			string(attendee.FormData),
		}
		for i, value := range data {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			if err = f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to set cell value: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err = f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CheckInQR renders the QR code that admins show at the door; it points at
// the frontend check-in page for the event.
func (s *EventService) CheckInQR(ctx context.Context, actorID, eventID string) ([]byte, error) {
	event, err := s.get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err = s.requireEventManager(ctx, actorID, event.ClubID); err != nil {
		return nil, err
	}

	target := fmt.Sprintf("%s/events/%s/checkin", s.frontendURL, eventID)
	return qrcode.Encode(target, qrcode.Medium, 512)
}

func (s *EventService) get(ctx context.Context, eventID string) (*entity.Event, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// requireEventManager gates management actions: club events need a club
// admin or moderator, global events a super-admin.
func (s *EventService) requireEventManager(ctx context.Context, actorID string, clubID *string) error {
	if clubID != nil {
		return s.clubService.RequireRole(ctx, *clubID, actorID,
			entity.ClubRoleAdmin, entity.ClubRoleModerator)
	}

	isSuper, err := s.userService.IsSuperAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if !isSuper {
		return errorz.ErrForbidden
	}
	return nil
}
