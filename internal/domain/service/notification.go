package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/ports/secondary"
)

type NotificationService struct {
	notificationRepo secondary.NotificationRepository
	regRepo          secondary.RegistrationRepository
	userRepo         secondary.UserRepository
	// smtp is nil when email delivery is disabled.
	smtp secondary.SMTPClient

	logger *zap.SugaredLogger
	cron   *cron.Cron

	reminderInterval time.Duration
	reminderWindow   time.Duration
}

func NewNotificationService(
	logger *zap.SugaredLogger,
	notificationRepo secondary.NotificationRepository,
	regRepo secondary.RegistrationRepository,
	userRepo secondary.UserRepository,
	smtp secondary.SMTPClient,
	reminderInterval time.Duration,
	reminderWindow time.Duration,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		regRepo:          regRepo,
		userRepo:         userRepo,
		smtp:             smtp,
		logger:           logger,
		cron:             cron.New(),
		reminderInterval: reminderInterval,
		reminderWindow:   reminderWindow,
	}
}

func (s *NotificationService) Inbox(ctx context.Context, userID string) ([]entity.Notification, error) {
	return s.notificationRepo.GetUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return s.notificationRepo.MarkRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// SendInviteEmail delivers an email copy of a team invitation. Delivery is
// best-effort: failures are logged, never returned, so the inviting
// transaction is already committed whatever happens here.
func (s *NotificationService) SendInviteEmail(ctx context.Context, userID, teamName string) {
	s.sendEmail(ctx, userID,
		"Team invitation",
		fmt.Sprintf("<p>You have been invited to join <b>%s</b>. Open your inbox to respond.</p>", teamName),
	)
}

func (s *NotificationService) SendApplicationEmail(ctx context.Context, captainID, candidateName, teamName string) {
	s.sendEmail(ctx, captainID,
		"New join request",
		fmt.Sprintf("<p><b>%s</b> wants to join <b>%s</b>. Open your inbox to respond.</p>", candidateName, teamName),
	)
}

func (s *NotificationService) sendEmail(ctx context.Context, userID, subject, body string) {
	if s.smtp == nil {
		return
	}

	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to resolve email recipient %s: %v", userID, err)
		return
	}

	go func() {
		if errSend := s.smtp.Send(user.Email, subject, body); errSend != nil {
			s.logger.Errorf("failed to send email to %s: %v", user.Email, errSend)
		}
	}()
}

// StartReminderScheduler schedules the pre-event reminder sweep.
func (s *NotificationService) StartReminderScheduler() error {
	s.logger.Debug("initializing reminder scheduler")

	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.reminderInterval), func() {
		s.checkAndRemind(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("reminder scheduler started")
	return nil
}

func (s *NotificationService) StopReminderScheduler() {
	if s.cron != nil {
		s.cron.Stop()
		s.logger.Info("reminder scheduler stopped")
	}
}

// checkAndRemind creates inbox reminders for registrations whose event starts
// inside the reminder window. The reminded_at stamp on the registration keeps
// the sweep idempotent.
func (s *NotificationService) checkAndRemind(ctx context.Context) {
	items, err := s.regRepo.GetDueReminders(ctx, time.Now().Add(s.reminderWindow))
	if err != nil {
		s.logger.Errorf("failed to get due reminders: %v", err)
		return
	}

	for _, item := range items {
		data, errMarshal := json.Marshal(entity.NotificationData{EventID: item.EventID})
		if errMarshal != nil {
			s.logger.Errorf("failed to marshal reminder payload: %v", errMarshal)
			continue
		}

		n := &entity.Notification{
			UserID:  item.UserID,
			Type:    entity.NotificationEventReminder,
			Message: fmt.Sprintf("%s starts at %s", item.EventTitle, item.StartAt.Format("02.01.2006 15:04")),
			Data:    data,
		}

		if errRemind := s.regRepo.MarkReminded(ctx, item.RegistrationID, n); errRemind != nil {
			s.logger.Errorf("failed to record reminder for registration %s: %v", item.RegistrationID, errRemind)
			continue
		}

		s.logger.Infow("reminder created", "user_id", item.UserID, "event_id", item.EventID)
	}
}
