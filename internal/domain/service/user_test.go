package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/backend/internal/adapters/secondary/postgres"
	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/dto"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	db := setupTestDB(t)
	return NewUserService(postgres.NewUserRepository(db), postgres.NewProfileRepository(db))
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "password123", "alice", "Alice")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected user ID to be set")
	}

	loggedIn, err := svc.Login(ctx, "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned user %s, want %s", loggedIn.ID, user.ID)
	}

	if _, err := svc.Login(ctx, "alice@example.com", "wrong-password"); !errors.Is(err, errorz.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "password123"); !errors.Is(err, errorz.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestUserService_RegisterDuplicates(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bob@example.com", "password123", "bob", "Bob"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Register(ctx, "bob@example.com", "password123", "bob2", "Bob"); !errors.Is(err, errorz.ErrEmailTaken) {
		t.Errorf("duplicate email: got %v, want ErrEmailTaken", err)
	}
	if _, err := svc.Register(ctx, "bob2@example.com", "password123", "bob", "Bob"); !errors.Is(err, errorz.ErrUsernameTaken) {
		t.Errorf("duplicate username: got %v, want ErrUsernameTaken", err)
	}
}

func TestUserService_RegisterValidation(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		email    string
		password string
		username string
	}{
		{"bad email", "not-an-email", "password123", "carol"},
		{"short password", "carol@example.com", "short", "carol"},
		{"bad username", "carol@example.com", "password123", "c"},
	}
	for _, tc := range cases {
		if _, err := svc.Register(ctx, tc.email, tc.password, tc.username, ""); !errors.Is(err, errorz.ErrValidation) {
			t.Errorf("%s: got %v, want ErrValidation", tc.name, err)
		}
	}
}

func TestUserService_GetOrCreateFromGitHub(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	first, err := svc.GetOrCreateFromGitHub(ctx, "12345", "dev@example.com", "devuser", "Dev User", "")
	if err != nil {
		t.Fatalf("first oauth login failed: %v", err)
	}

	second, err := svc.GetOrCreateFromGitHub(ctx, "12345", "dev@example.com", "devuser", "Dev User", "")
	if err != nil {
		t.Fatalf("second oauth login failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("repeat oauth login created a new account: %s != %s", second.ID, first.ID)
	}

	// OAuth-only accounts have no password and must not pass password login.
	if _, err := svc.Login(ctx, "dev@example.com", "anything-at-all"); !errors.Is(err, errorz.ErrInvalidCredentials) {
		t.Errorf("password login for oauth account: got %v, want ErrInvalidCredentials", err)
	}
}

func TestUserService_GetOrCreateFromGitHub_LinksExistingEmail(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	registered := registerUser(t, svc, "linked@example.com", "linked")

	viaOAuth, err := svc.GetOrCreateFromGitHub(ctx, "999", "linked@example.com", "linked_gh", "Linked", "")
	if err != nil {
		t.Fatalf("oauth login failed: %v", err)
	}
	if viaOAuth.ID != registered.ID {
		t.Errorf("oauth login with known email created a new account: %s != %s", viaOAuth.ID, registered.ID)
	}
}

func TestUserService_UpdateMyProfile(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	user := registerUser(t, svc, "dana@example.com", "dana")

	bio := "I build things"
	stack := []string{"go", "postgres"}
	profile, err := svc.UpdateMyProfile(ctx, user.ID, dto.ProfileUpdate{Bio: &bio, TechStack: &stack})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if profile.Bio != bio {
		t.Errorf("bio = %q, want %q", profile.Bio, bio)
	}
	if len(profile.TechStack) != 2 {
		t.Errorf("tech stack = %v, want 2 entries", profile.TechStack)
	}

	badLink := "not a url"
	if _, err := svc.UpdateMyProfile(ctx, user.ID, dto.ProfileUpdate{AvatarURL: &badLink}); !errors.Is(err, errorz.ErrValidation) {
		t.Errorf("invalid avatar url: got %v, want ErrValidation", err)
	}
}

func TestUserService_Search(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	registerUser(t, svc, "searchme@example.com", "searchme")
	registerUser(t, svc, "other@example.com", "unrelated")

	results, err := svc.Search(ctx, "search")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].Username != "searchme" {
		t.Errorf("search results = %+v, want exactly searchme", results)
	}

	short, err := svc.Search(ctx, "s")
	if err != nil {
		t.Fatalf("short query search failed: %v", err)
	}
	if len(short) != 0 {
		t.Errorf("short query returned %d results, want 0", len(short))
	}
}
