package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/adapters/secondary/postgres"
	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/entity"
)

type clubFixture struct {
	db    *gorm.DB
	users *UserService
	clubs *ClubService
	admin *entity.User
	club  *entity.Club
}

func newClubFixture(t *testing.T) *clubFixture {
	t.Helper()
	db := setupTestDB(t)
	ctx := context.Background()

	users := NewUserService(postgres.NewUserRepository(db), postgres.NewProfileRepository(db))
	clubs := NewClubService(
		postgres.NewClubRepository(db),
		postgres.NewClubMemberRepository(db),
		postgres.NewAnnouncementRepository(db),
		postgres.NewProfileRepository(db),
		nil,
	)

	admin := registerUser(t, users, "admin@example.com", "platform_admin")
	makeSuperAdmin(t, db, admin.ID)

	club, err := clubs.Create(ctx, admin.ID, &entity.Club{Name: "Robotics Club", Category: "tech"})
	if err != nil {
		t.Fatalf("failed creating club: %v", err)
	}

	return &clubFixture{db: db, users: users, clubs: clubs, admin: admin, club: club}
}

func (f *clubFixture) membership(t *testing.T, userID string) *entity.ClubMember {
	t.Helper()
	var m entity.ClubMember
	err := f.db.Where("club_id = ? AND user_id = ?", f.club.ID, userID).First(&m).Error
	if err != nil {
		t.Fatalf("failed loading membership: %v", err)
	}
	return &m
}

func TestClubService_CreateRequiresSuperAdmin(t *testing.T) {
	f := newClubFixture(t)
	ctx := context.Background()

	regular := registerUser(t, f.users, "regular@example.com", "regular")
	if _, err := f.clubs.Create(ctx, regular.ID, &entity.Club{Name: "Chess Club"}); !errors.Is(err, errorz.ErrForbidden) {
		t.Errorf("create by regular user: got %v, want ErrForbidden", err)
	}
}

func TestClubService_ApplyApproveLifecycle(t *testing.T) {
	f := newClubFixture(t)
	ctx := context.Background()

	member := registerUser(t, f.users, "member@example.com", "member")

	if err := f.clubs.Apply(ctx, f.club.ID, member.ID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := f.clubs.Apply(ctx, f.club.ID, member.ID); !errors.Is(err, errorz.ErrAlreadyApplied) {
		t.Errorf("duplicate apply: got %v, want ErrAlreadyApplied", err)
	}

	m := f.membership(t, member.ID)
	if m.Status != entity.MembershipPending {
		t.Errorf("fresh application status = %s, want pending", m.Status)
	}

	if err := f.clubs.ProcessApplication(ctx, f.admin.ID, m.ID, "approve"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if got := f.membership(t, member.ID); got.Status != entity.MembershipActive {
		t.Errorf("approved status = %s, want active", got.Status)
	}

	// Approved member still cannot re-apply.
	if err := f.clubs.Apply(ctx, f.club.ID, member.ID); !errors.Is(err, errorz.ErrAlreadyApplied) {
		t.Errorf("apply after approval: got %v, want ErrAlreadyApplied", err)
	}
}

func TestClubService_RejectAllowsReapply(t *testing.T) {
	f := newClubFixture(t)
	ctx := context.Background()

	applicant := registerUser(t, f.users, "applicant@example.com", "applicant")

	if err := f.clubs.Apply(ctx, f.club.ID, applicant.ID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	m := f.membership(t, applicant.ID)

	if err := f.clubs.ProcessApplication(ctx, f.admin.ID, m.ID, "reject"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	var count int64
	f.db.Model(&entity.ClubMember{}).Where("club_id = ? AND user_id = ?", f.club.ID, applicant.ID).Count(&count)
	if count != 0 {
		t.Fatalf("rejected membership still present, count = %d", count)
	}

	if err := f.clubs.Apply(ctx, f.club.ID, applicant.ID); err != nil {
		t.Errorf("re-apply after rejection failed: %v", err)
	}
}

func TestClubService_ProcessApplicationRejectsUnknownAction(t *testing.T) {
	f := newClubFixture(t)
	ctx := context.Background()

	applicant := registerUser(t, f.users, "applicant2@example.com", "applicant2")
	if err := f.clubs.Apply(ctx, f.club.ID, applicant.ID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	m := f.membership(t, applicant.ID)

	if err := f.clubs.ProcessApplication(ctx, f.admin.ID, m.ID, "maybe"); !errors.Is(err, errorz.ErrValidation) {
		t.Errorf("unknown action: got %v, want ErrValidation", err)
	}
}

func TestClubService_AnnouncementsVisibility(t *testing.T) {
	f := newClubFixture(t)
	ctx := context.Background()

	member := registerUser(t, f.users, "reader@example.com", "reader")
	outsider := registerUser(t, f.users, "outsider@example.com", "outsider")

	if err := f.clubs.Apply(ctx, f.club.ID, member.ID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	m := f.membership(t, member.ID)
	if err := f.clubs.ProcessApplication(ctx, f.admin.ID, m.ID, "approve"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if err := f.clubs.PostAnnouncement(ctx, f.admin.ID, f.club.ID, "Kickoff", "First meeting on Friday"); err != nil {
		t.Fatalf("post announcement failed: %v", err)
	}

	// Plain members cannot post.
	if err := f.clubs.PostAnnouncement(ctx, member.ID, f.club.ID, "Hijack", "nope"); !errors.Is(err, errorz.ErrForbidden) {
		t.Errorf("announcement by plain member: got %v, want ErrForbidden", err)
	}

	got, err := f.clubs.Announcements(ctx, member.ID, f.club.ID)
	if err != nil {
		t.Fatalf("member reading announcements failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Kickoff" {
		t.Errorf("announcements = %+v, want single Kickoff entry", got)
	}

	if _, err := f.clubs.Announcements(ctx, outsider.ID, f.club.ID); !errors.Is(err, errorz.ErrForbidden) {
		t.Errorf("outsider reading announcements: got %v, want ErrForbidden", err)
	}
}

func TestClubService_AssignRolePromotesToModerator(t *testing.T) {
	f := newClubFixture(t)
	ctx := context.Background()

	member := registerUser(t, f.users, "promoted@example.com", "promoted")
	if err := f.clubs.Apply(ctx, f.club.ID, member.ID); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	m := f.membership(t, member.ID)
	if err := f.clubs.ProcessApplication(ctx, f.admin.ID, m.ID, "approve"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if err := f.clubs.AssignRole(ctx, f.admin.ID, f.club.ID, member.ID, entity.ClubRoleModerator); err != nil {
		t.Fatalf("assign role failed: %v", err)
	}

	// Moderators can post announcements.
	if err := f.clubs.PostAnnouncement(ctx, member.ID, f.club.ID, "Update", "Room changed"); err != nil {
		t.Errorf("announcement by moderator failed: %v", err)
	}

	if err := f.clubs.AssignRole(ctx, member.ID, f.club.ID, f.admin.ID, entity.ClubRoleAdmin); !errors.Is(err, errorz.ErrForbidden) {
		t.Errorf("assign role by moderator: got %v, want ErrForbidden", err)
	}
}
