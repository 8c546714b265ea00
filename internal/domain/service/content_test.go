package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campushub/backend/internal/adapters/secondary/postgres"
	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/entity"
)

func TestPollService_VoteAndResults(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	polls := NewPollService(postgres.NewPollRepository(db))

	poll := &entity.Poll{
		Question: "Next workshop topic?",
		Options:  []string{"grpc", "generics", "profiling"},
	}
	if err := db.Create(poll).Error; err != nil {
		t.Fatalf("failed seeding poll: %v", err)
	}

	if err := polls.Vote(ctx, poll.ID, "user-1", "grpc"); err != nil {
		t.Fatalf("vote failed: %v", err)
	}
	if err := polls.Vote(ctx, poll.ID, "user-2", "grpc"); err != nil {
		t.Fatalf("second voter failed: %v", err)
	}
	if err := polls.Vote(ctx, poll.ID, "user-3", "profiling"); err != nil {
		t.Fatalf("third voter failed: %v", err)
	}

	if err := polls.Vote(ctx, poll.ID, "user-1", "generics"); !errors.Is(err, errorz.ErrAlreadyVoted) {
		t.Errorf("second vote by same user: got %v, want ErrAlreadyVoted", err)
	}
	if err := polls.Vote(ctx, poll.ID, "user-4", "rust"); !errors.Is(err, errorz.ErrValidation) {
		t.Errorf("vote for unknown option: got %v, want ErrValidation", err)
	}

	results, err := polls.Results(ctx, poll.ID)
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if results["grpc"] != 2 || results["profiling"] != 1 {
		t.Errorf("results = %v, want grpc:2 profiling:1", results)
	}
}

func TestProjectService_LikeLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	projects := NewProjectService(postgres.NewProjectRepository(db), nil)

	project, err := projects.Submit(ctx, "author-1", &entity.Project{
		Title:   "Course Planner",
		RepoURL: "https://github.com/example/planner",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := projects.Like(ctx, project.ID, "fan-1"); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := projects.Like(ctx, project.ID, "fan-1"); !errors.Is(err, errorz.ErrAlreadyLiked) {
		t.Errorf("duplicate like: got %v, want ErrAlreadyLiked", err)
	}

	var stored entity.Project
	if err := db.First(&stored, "id = ?", project.ID).Error; err != nil {
		t.Fatalf("failed loading project: %v", err)
	}
	if stored.LikesCount != 1 {
		t.Errorf("likes count = %d, want 1", stored.LikesCount)
	}

	if err := projects.Unlike(ctx, project.ID, "fan-1"); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	db.First(&stored, "id = ?", project.ID)
	if stored.LikesCount != 0 {
		t.Errorf("likes count after unlike = %d, want 0", stored.LikesCount)
	}

	// Unliking twice is a no-op, the counter must not go negative.
	if err := projects.Unlike(ctx, project.ID, "fan-1"); err != nil {
		t.Fatalf("repeat unlike failed: %v", err)
	}
	db.First(&stored, "id = ?", project.ID)
	if stored.LikesCount != 0 {
		t.Errorf("likes count after repeat unlike = %d, want 0", stored.LikesCount)
	}
}

func TestProjectService_SubmitValidation(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	projects := NewProjectService(postgres.NewProjectRepository(db), nil)

	if _, err := projects.Submit(ctx, "author-1", &entity.Project{}); !errors.Is(err, errorz.ErrValidation) {
		t.Errorf("empty title: got %v, want ErrValidation", err)
	}
	if _, err := projects.Submit(ctx, "author-1", &entity.Project{
		Title:   "Broken",
		RepoURL: "not a url",
	}); !errors.Is(err, errorz.ErrValidation) {
		t.Errorf("bad repo url: got %v, want ErrValidation", err)
	}
}

func TestResourceService_AddAndFilter(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	resources := NewResourceService(postgres.NewResourceRepository(db))

	if _, err := resources.Add(ctx, "user-1", &entity.Resource{
		Title:    "Effective Go",
		URL:      "https://go.dev/doc/effective_go",
		Category: "articles",
	}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := resources.Add(ctx, "user-1", &entity.Resource{
		Title:    "Go Time",
		URL:      "https://changelog.com/gotime",
		Category: "podcasts",
	}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := resources.Add(ctx, "user-1", &entity.Resource{Title: "No link"}); !errors.Is(err, errorz.ErrValidation) {
		t.Errorf("missing url: got %v, want ErrValidation", err)
	}

	all, err := resources.List(ctx, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unfiltered list = %d entries, want 2", len(all))
	}

	articles, err := resources.List(ctx, "articles")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(articles) != 1 || articles[0].Title != "Effective Go" {
		t.Errorf("filtered list = %+v, want only Effective Go", articles)
	}
}

func TestLeaderboardService_GlobalOrdersByXP(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserService(postgres.NewUserRepository(db), postgres.NewProfileRepository(db))
	board := NewLeaderboardService(
		testLogger(),
		postgres.NewProfileRepository(db),
		postgres.NewTeamRepository(db),
		nil,
		3,
	)

	for _, seed := range []struct {
		username string
		xp       int
	}{
		{"bronze", 10},
		{"gold", 300},
		{"silver", 150},
		{"unranked", 0},
	} {
		user := registerUser(t, users, seed.username+"@example.com", seed.username)
		err := db.Model(&entity.Profile{}).Where("user_id = ?", user.ID).Update("global_xp", seed.xp).Error
		if err != nil {
			t.Fatalf("failed seeding xp: %v", err)
		}
	}

	entries, err := board.Global(ctx)
	if err != nil {
		t.Fatalf("leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("leaderboard size = %d, want 3", len(entries))
	}
	want := []string{"gold", "silver", "bronze"}
	for i, username := range want {
		if entries[i].Username != username {
			t.Errorf("position %d = %s, want %s", i+1, entries[i].Username, username)
		}
	}
}

func TestNotificationService_ReminderSweepIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserService(postgres.NewUserRepository(db), postgres.NewProfileRepository(db))
	notifications := NewNotificationService(
		testLogger(),
		postgres.NewNotificationRepository(db),
		postgres.NewRegistrationRepository(db),
		postgres.NewUserRepository(db),
		nil,
		time.Minute,
		24*time.Hour,
	)

	attendee := registerUser(t, users, "reminded@example.com", "reminded")

	event := &entity.Event{
		Title:     "Soon Event",
		CreatedBy: attendee.ID,
		StartAt:   time.Now().Add(2 * time.Hour),
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed seeding event: %v", err)
	}
	reg := &entity.EventRegistration{
		EventID: event.ID,
		UserID:  attendee.ID,
		Status:  entity.RegistrationRegistered,
	}
	if err := db.Create(reg).Error; err != nil {
		t.Fatalf("failed seeding registration: %v", err)
	}

	notifications.checkAndRemind(ctx)
	notifications.checkAndRemind(ctx)

	var count int64
	db.Model(&entity.Notification{}).
		Where("user_id = ? AND type = ?", attendee.ID, entity.NotificationEventReminder).
		Count(&count)
	if count != 1 {
		t.Errorf("reminder notifications = %d, want exactly 1", count)
	}

	inbox, err := notifications.Inbox(ctx, attendee.ID)
	if err != nil {
		t.Fatalf("inbox failed: %v", err)
	}
	if len(inbox) != 1 {
		t.Fatalf("inbox = %d entries, want 1", len(inbox))
	}

	stranger := registerUser(t, users, "stranger@example.com", "stranger")
	if err := notifications.MarkRead(ctx, stranger.ID, inbox[0].ID); err != nil {
		t.Fatalf("mark read by stranger failed: %v", err)
	}
	inbox, err = notifications.Inbox(ctx, attendee.ID)
	if err != nil {
		t.Fatalf("inbox after foreign read failed: %v", err)
	}
	if len(inbox) != 1 {
		t.Fatalf("inbox after foreign read = %d entries, want 1", len(inbox))
	}

	if err := notifications.MarkRead(ctx, attendee.ID, inbox[0].ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	inbox, err = notifications.Inbox(ctx, attendee.ID)
	if err != nil {
		t.Fatalf("inbox after read failed: %v", err)
	}
	if len(inbox) != 0 {
		t.Errorf("inbox after read = %d entries, want 0", len(inbox))
	}
}
