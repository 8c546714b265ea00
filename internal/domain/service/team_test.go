package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/adapters/secondary/postgres"
	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/entity"
)

type teamFixture struct {
	db    *gorm.DB
	users *UserService
	teams *TeamService
}

func newTeamFixture(t *testing.T) *teamFixture {
	t.Helper()
	db := setupTestDB(t)

	users := NewUserService(postgres.NewUserRepository(db), postgres.NewProfileRepository(db))
	notifications := NewNotificationService(
		testLogger(),
		postgres.NewNotificationRepository(db),
		postgres.NewRegistrationRepository(db),
		postgres.NewUserRepository(db),
		nil,
		time.Minute,
		time.Hour,
	)
	teams := NewTeamService(
		postgres.NewTeamRepository(db),
		postgres.NewTeamInvitationRepository(db),
		postgres.NewNotificationRepository(db),
		postgres.NewProfileRepository(db),
		notifications,
	)

	return &teamFixture{db: db, users: users, teams: teams}
}

func (f *teamFixture) inviteNotification(t *testing.T, userID string) *entity.Notification {
	t.Helper()
	var n entity.Notification
	err := f.db.Where("user_id = ? AND type = ?", userID, entity.NotificationInvite).First(&n).Error
	if err != nil {
		t.Fatalf("failed loading invite notification: %v", err)
	}
	return &n
}

func TestTeamService_CreateEnforcesSingleTeam(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	captain := registerUser(t, f.users, "captain@example.com", "captain")

	team, err := f.teams.Create(ctx, captain.ID, "Night Owls", "late hackers", []string{"go"})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if team.CaptainID != captain.ID {
		t.Errorf("captain = %s, want %s", team.CaptainID, captain.ID)
	}

	var member entity.TeamMember
	if err := f.db.Where("team_id = ? AND user_id = ?", team.ID, captain.ID).First(&member).Error; err != nil {
		t.Fatalf("captain membership missing: %v", err)
	}
	if member.Role != entity.TeamRoleCaptain {
		t.Errorf("captain membership role = %s, want captain", member.Role)
	}

	if _, err := f.teams.Create(ctx, captain.ID, "Second Team", "", nil); !errors.Is(err, errorz.ErrAlreadyInTeam) {
		t.Errorf("second team by same user: got %v, want ErrAlreadyInTeam", err)
	}
}

func TestTeamService_InviteAndAccept(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	captain := registerUser(t, f.users, "cap@example.com", "cap")
	candidate := registerUser(t, f.users, "cand@example.com", "cand")

	team, err := f.teams.Create(ctx, captain.ID, "Builders", "", nil)
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	if err := f.teams.Invite(ctx, captain.ID, team.ID, candidate.ID); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	if err := f.teams.Invite(ctx, captain.ID, team.ID, candidate.ID); !errors.Is(err, errorz.ErrAlreadyInvited) {
		t.Errorf("duplicate invite: got %v, want ErrAlreadyInvited", err)
	}

	// The invitation row and inbox notification are written together.
	notification := f.inviteNotification(t, candidate.ID)
	var invites int64
	f.db.Model(&entity.TeamInvitation{}).Where("team_id = ? AND user_id = ?", team.ID, candidate.ID).Count(&invites)
	if invites != 1 {
		t.Fatalf("invitation rows = %d, want 1", invites)
	}

	if err := f.teams.AcceptInvite(ctx, candidate.ID, notification.ID, team.ID); err != nil {
		t.Fatalf("accept invite failed: %v", err)
	}

	var member entity.TeamMember
	if err := f.db.Where("team_id = ? AND user_id = ?", team.ID, candidate.ID).First(&member).Error; err != nil {
		t.Fatalf("accepted member missing: %v", err)
	}
	if member.Role != entity.TeamRoleMember {
		t.Errorf("accepted member role = %s, want member", member.Role)
	}

	f.db.Model(&entity.TeamInvitation{}).Where("team_id = ? AND user_id = ?", team.ID, candidate.ID).Count(&invites)
	if invites != 0 {
		t.Errorf("invitation rows after accept = %d, want 0", invites)
	}

	var read entity.Notification
	if err := f.db.First(&read, "id = ?", notification.ID).Error; err != nil {
		t.Fatalf("notification missing after accept: %v", err)
	}
	if !read.IsRead {
		t.Error("invite notification should be marked read on accept")
	}
}

func TestTeamService_AcceptWhileInAnotherTeam(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	captainA := registerUser(t, f.users, "capa@example.com", "capa")
	captainB := registerUser(t, f.users, "capb@example.com", "capb")
	candidate := registerUser(t, f.users, "busy@example.com", "busy")

	teamA, err := f.teams.Create(ctx, captainA.ID, "Team A", "", nil)
	if err != nil {
		t.Fatalf("create team A failed: %v", err)
	}
	teamB, err := f.teams.Create(ctx, captainB.ID, "Team B", "", nil)
	if err != nil {
		t.Fatalf("create team B failed: %v", err)
	}

	if err := f.teams.Invite(ctx, captainA.ID, teamA.ID, candidate.ID); err != nil {
		t.Fatalf("invite to A failed: %v", err)
	}
	if err := f.teams.Invite(ctx, captainB.ID, teamB.ID, candidate.ID); err != nil {
		t.Fatalf("invite to B failed: %v", err)
	}

	var fromA, fromB entity.Notification
	if err := f.db.Where("user_id = ? AND message LIKE ?", candidate.ID, "%Team A%").First(&fromA).Error; err != nil {
		t.Fatalf("failed loading invite from A: %v", err)
	}
	if err := f.db.Where("user_id = ? AND message LIKE ?", candidate.ID, "%Team B%").First(&fromB).Error; err != nil {
		t.Fatalf("failed loading invite from B: %v", err)
	}

	if err := f.teams.AcceptInvite(ctx, candidate.ID, fromA.ID, teamA.ID); err != nil {
		t.Fatalf("accept invite to A failed: %v", err)
	}
	if err := f.teams.AcceptInvite(ctx, candidate.ID, fromB.ID, teamB.ID); !errors.Is(err, errorz.ErrAlreadyInTeam) {
		t.Errorf("accept while already in a team: got %v, want ErrAlreadyInTeam", err)
	}
}

func TestTeamService_InviteRequiresCaptain(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	captain := registerUser(t, f.users, "lead@example.com", "lead")
	outsider := registerUser(t, f.users, "nosey@example.com", "nosey")
	candidate := registerUser(t, f.users, "target@example.com", "target")

	team, err := f.teams.Create(ctx, captain.ID, "Guarded", "", nil)
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	if err := f.teams.Invite(ctx, outsider.ID, team.ID, candidate.ID); !errors.Is(err, errorz.ErrNotCaptain) {
		t.Errorf("invite by non-captain: got %v, want ErrNotCaptain", err)
	}
}

func TestTeamService_KickProtectsCaptain(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	captain := registerUser(t, f.users, "boss@example.com", "boss")
	member := registerUser(t, f.users, "crew@example.com", "crew")

	team, err := f.teams.Create(ctx, captain.ID, "Crew", "", nil)
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if err := f.teams.Invite(ctx, captain.ID, team.ID, member.ID); err != nil {
		t.Fatalf("invite failed: %v", err)
	}
	notification := f.inviteNotification(t, member.ID)
	if err := f.teams.AcceptInvite(ctx, member.ID, notification.ID, team.ID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}

	if err := f.teams.Kick(ctx, captain.ID, team.ID, captain.ID); !errors.Is(err, errorz.ErrValidation) {
		t.Errorf("kicking the captain: got %v, want ErrValidation", err)
	}

	if err := f.teams.Kick(ctx, captain.ID, team.ID, member.ID); err != nil {
		t.Fatalf("kick failed: %v", err)
	}
	var count int64
	f.db.Model(&entity.TeamMember{}).Where("team_id = ? AND user_id = ?", team.ID, member.ID).Count(&count)
	if count != 0 {
		t.Errorf("member rows after kick = %d, want 0", count)
	}
}

func TestTeamService_RequestToJoinNotifiesCaptain(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	captain := registerUser(t, f.users, "owner@example.com", "owner")
	candidate := registerUser(t, f.users, "eager@example.com", "eager")

	team, err := f.teams.Create(ctx, captain.ID, "Open Team", "", nil)
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	if err := f.teams.RequestToJoin(ctx, team.ID, candidate.ID); err != nil {
		t.Fatalf("request to join failed: %v", err)
	}

	var n entity.Notification
	err = f.db.Where("user_id = ? AND type = ?", captain.ID, entity.NotificationApplication).First(&n).Error
	if err != nil {
		t.Fatalf("application notification missing: %v", err)
	}

	if err := f.teams.AcceptApplication(ctx, captain.ID, n.ID, team.ID, candidate.ID); err != nil {
		t.Fatalf("accept application failed: %v", err)
	}
	var member entity.TeamMember
	if err := f.db.Where("team_id = ? AND user_id = ?", team.ID, candidate.ID).First(&member).Error; err != nil {
		t.Fatalf("applicant membership missing: %v", err)
	}
}

func TestTeamService_AcceptRequiresInvitation(t *testing.T) {
	f := newTeamFixture(t)
	ctx := context.Background()

	captain := registerUser(t, f.users, "owner@example.com", "owner")
	intruder := registerUser(t, f.users, "intruder@example.com", "intruder")

	team, err := f.teams.Create(ctx, captain.ID, "Closed Circle", "", nil)
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	if err := f.teams.AcceptInvite(ctx, intruder.ID, "", team.ID); !errors.Is(err, errorz.ErrNotFound) {
		t.Fatalf("accept without invitation: got %v, want ErrNotFound", err)
	}

	var members int64
	f.db.Model(&entity.TeamMember{}).Where("team_id = ? AND user_id = ?", team.ID, intruder.ID).Count(&members)
	if members != 0 {
		t.Errorf("membership rows without invitation = %d, want 0", members)
	}
}
