package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/adapters/secondary/postgres"
	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/entity"
)

type eventFixture struct {
	db     *gorm.DB
	users  *UserService
	events *EventService
	admin  *entity.User
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()
	db := setupTestDB(t)

	users := NewUserService(postgres.NewUserRepository(db), postgres.NewProfileRepository(db))
	clubs := NewClubService(
		postgres.NewClubRepository(db),
		postgres.NewClubMemberRepository(db),
		postgres.NewAnnouncementRepository(db),
		postgres.NewProfileRepository(db),
		nil,
	)
	events := NewEventService(
		testLogger(),
		postgres.NewEventRepository(db),
		postgres.NewRegistrationRepository(db),
		clubs,
		users,
		50,
		"http://localhost:3000",
	)

	admin := registerUser(t, users, "organizer@example.com", "organizer")
	makeSuperAdmin(t, db, admin.ID)

	return &eventFixture{db: db, users: users, events: events, admin: admin}
}

func (f *eventFixture) createEvent(t *testing.T, ev *entity.Event) *entity.Event {
	t.Helper()
	created, err := f.events.Create(context.Background(), f.admin.ID, ev, nil)
	if err != nil {
		t.Fatalf("failed creating event: %v", err)
	}
	return created
}

func (f *eventFixture) xp(t *testing.T, userID string) int {
	t.Helper()
	var profile entity.Profile
	if err := f.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		t.Fatalf("failed loading profile: %v", err)
	}
	return profile.GlobalXP
}

func TestEventService_CreateRequiresManager(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	regular := registerUser(t, f.users, "student@example.com", "student")
	_, err := f.events.Create(ctx, regular.ID, &entity.Event{
		Title:   "Rogue meetup",
		StartAt: time.Now().Add(24 * time.Hour),
	}, nil)
	if !errors.Is(err, errorz.ErrForbidden) {
		t.Errorf("global event by regular user: got %v, want ErrForbidden", err)
	}
}

func TestEventService_RegisterCapacity(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	event := f.createEvent(t, &entity.Event{
		Title:       "Go Workshop",
		StartAt:     time.Now().Add(24 * time.Hour),
		MaxCapacity: 1,
	})

	first := registerUser(t, f.users, "first@example.com", "first")
	second := registerUser(t, f.users, "second@example.com", "second")

	if err := f.events.Register(ctx, event.ID, first.ID, nil); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if err := f.events.Register(ctx, event.ID, second.ID, nil); !errors.Is(err, errorz.ErrEventFull) {
		t.Errorf("registration over capacity: got %v, want ErrEventFull", err)
	}
}

func TestEventService_RegisterOverwritesFormData(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	event := f.createEvent(t, &entity.Event{
		Title:       "Hack Night",
		StartAt:     time.Now().Add(24 * time.Hour),
		MaxCapacity: 1,
	})
	user := registerUser(t, f.users, "former@example.com", "former")

	if err := f.events.Register(ctx, event.ID, user.ID, json.RawMessage(`{"tshirt":"M"}`)); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	// Re-registering must not hit the capacity check and must overwrite the
	// form answers in place.
	if err := f.events.Register(ctx, event.ID, user.ID, json.RawMessage(`{"tshirt":"L"}`)); err != nil {
		t.Fatalf("re-registration failed: %v", err)
	}

	var regs []entity.EventRegistration
	if err := f.db.Where("event_id = ? AND user_id = ?", event.ID, user.ID).Find(&regs).Error; err != nil {
		t.Fatalf("failed loading registrations: %v", err)
	}
	if len(regs) != 1 {
		t.Fatalf("registration rows = %d, want 1", len(regs))
	}

	var form map[string]string
	if err := json.Unmarshal(regs[0].FormData, &form); err != nil {
		t.Fatalf("failed decoding form data: %v", err)
	}
	if form["tshirt"] != "L" {
		t.Errorf("form data tshirt = %q, want L", form["tshirt"])
	}
}

func TestEventService_RegisterAfterStart(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	event := f.createEvent(t, &entity.Event{
		Title:   "Already Started",
		StartAt: time.Now().Add(-time.Hour),
	})
	user := registerUser(t, f.users, "late@example.com", "latecomer")

	if err := f.events.Register(ctx, event.ID, user.ID, nil); !errors.Is(err, errorz.ErrRegistrationEnded) {
		t.Errorf("registration after start: got %v, want ErrRegistrationEnded", err)
	}
}

func TestEventService_CancelWithoutRegistration(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	event := f.createEvent(t, &entity.Event{
		Title:   "Meetup",
		StartAt: time.Now().Add(24 * time.Hour),
	})
	user := registerUser(t, f.users, "ghost@example.com", "ghost")

	if err := f.events.Cancel(ctx, event.ID, user.ID); !errors.Is(err, errorz.ErrNotRegistered) {
		t.Errorf("cancel without registration: got %v, want ErrNotRegistered", err)
	}
}

func TestEventService_MarkPresentCreditsXPOnce(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	event := f.createEvent(t, &entity.Event{
		Title:   "Demo Day",
		StartAt: time.Now().Add(time.Hour),
	})
	attendee := registerUser(t, f.users, "present@example.com", "present")

	if err := f.events.Register(ctx, event.ID, attendee.ID, nil); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	credited, err := f.events.MarkPresent(ctx, f.admin.ID, event.ID, attendee.ID)
	if err != nil {
		t.Fatalf("first check-in failed: %v", err)
	}
	if !credited {
		t.Error("first check-in should credit XP")
	}
	if got := f.xp(t, attendee.ID); got != 50 {
		t.Errorf("xp after first check-in = %d, want 50", got)
	}

	credited, err = f.events.MarkPresent(ctx, f.admin.ID, event.ID, attendee.ID)
	if err != nil {
		t.Fatalf("repeat check-in failed: %v", err)
	}
	if credited {
		t.Error("repeat check-in must not credit XP again")
	}
	if got := f.xp(t, attendee.ID); got != 50 {
		t.Errorf("xp after repeat check-in = %d, want 50", got)
	}
}

func TestEventService_MarkPresentUnregistered(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	event := f.createEvent(t, &entity.Event{
		Title:   "Private Session",
		StartAt: time.Now().Add(time.Hour),
	})
	stranger := registerUser(t, f.users, "stranger@example.com", "stranger")

	if _, err := f.events.MarkPresent(ctx, f.admin.ID, event.ID, stranger.ID); !errors.Is(err, errorz.ErrNotRegistered) {
		t.Errorf("check-in without registration: got %v, want ErrNotRegistered", err)
	}
}

func TestEventService_ToggleRSVP(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	event := f.createEvent(t, &entity.Event{
		Title:   "Open Lecture",
		StartAt: time.Now().Add(48 * time.Hour),
	})
	user := registerUser(t, f.users, "rsvp@example.com", "rsvper")

	if err := f.events.ToggleRSVP(ctx, event.ID, user.ID, "going"); err != nil {
		t.Fatalf("rsvp going failed: %v", err)
	}
	if err := f.events.ToggleRSVP(ctx, event.ID, user.ID, "interested"); err != nil {
		t.Fatalf("rsvp change failed: %v", err)
	}

	var rsvp entity.EventRSVP
	if err := f.db.Where("event_id = ? AND user_id = ?", event.ID, user.ID).First(&rsvp).Error; err != nil {
		t.Fatalf("failed loading rsvp: %v", err)
	}
	if rsvp.Status != "interested" {
		t.Errorf("rsvp status = %q, want interested", rsvp.Status)
	}

	if err := f.events.ToggleRSVP(ctx, event.ID, user.ID, "none"); err != nil {
		t.Fatalf("rsvp clear failed: %v", err)
	}
	var count int64
	f.db.Model(&entity.EventRSVP{}).Where("event_id = ? AND user_id = ?", event.ID, user.ID).Count(&count)
	if count != 0 {
		t.Errorf("rsvp rows after clear = %d, want 0", count)
	}

	if err := f.events.ToggleRSVP(ctx, event.ID, user.ID, "perhaps"); !errors.Is(err, errorz.ErrValidation) {
		t.Errorf("unknown rsvp status: got %v, want ErrValidation", err)
	}
}

func TestEventService_CalendarICS(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	f.createEvent(t, &entity.Event{
		Title:    "Calendar Event",
		StartAt:  time.Now().Add(72 * time.Hour),
		IsPublic: true,
	})

	data, err := f.events.CalendarICS(ctx)
	if err != nil {
		t.Fatalf("calendar export failed: %v", err)
	}
	ics := string(data)
	for _, fragment := range []string{"BEGIN:VCALENDAR", "Calendar Event", "END:VCALENDAR"} {
		if !strings.Contains(ics, fragment) {
			t.Errorf("calendar output missing %q:\n%s", fragment, ics)
		}
	}
}
