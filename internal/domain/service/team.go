package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/domain/utils/validator"
	"github.com/campushub/backend/internal/ports/primary"
	"github.com/campushub/backend/internal/ports/secondary"
)

type TeamService struct {
	teamRepo            secondary.TeamRepository
	inviteRepo          secondary.TeamInvitationRepository
	notificationRepo    secondary.NotificationRepository
	profileRepo         secondary.ProfileRepository
	notificationService primary.NotificationService
}

func NewTeamService(
	teamRepo secondary.TeamRepository,
	inviteRepo secondary.TeamInvitationRepository,
	notificationRepo secondary.NotificationRepository,
	profileRepo secondary.ProfileRepository,
	notificationService primary.NotificationService,
) *TeamService {
	return &TeamService{
		teamRepo:            teamRepo,
		inviteRepo:          inviteRepo,
		notificationRepo:    notificationRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
	}
}

func (s *TeamService) Create(ctx context.Context, userID, name, description string, tags []string) (*entity.Team, error) {
	if !validator.TeamName(name) {
		return nil, fmt.Errorf("%w: team name must be 2-60 characters", errorz.ErrValidation)
	}

	if _, err := s.teamRepo.GetByUserID(ctx, userID); err == nil {
		return nil, errorz.ErrAlreadyInTeam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.teamRepo.CreateWithCaptain(ctx, &entity.Team{
		Name:        name,
		Description: description,
		CaptainID:   userID,
		Tags:        tags,
	})
}

func (s *TeamService) MyTeam(ctx context.Context, userID string) (*entity.Team, error) {
	team, err := s.teamRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *TeamService) List(ctx context.Context) ([]entity.Team, error) {
	return s.teamRepo.GetAll(ctx)
}

func (s *TeamService) Members(ctx context.Context, teamID string) ([]dto.TeamMemberInfo, error) {
	return s.teamRepo.GetMembers(ctx, teamID)
}

func (s *TeamService) Update(ctx context.Context, actorID, teamID, name, description string) error {
	team, err := s.requireCaptain(ctx, actorID, teamID)
	if err != nil {
		return err
	}

	if name != "" {
		if !validator.TeamName(name) {
			return fmt.Errorf("%w: team name must be 2-60 characters", errorz.ErrValidation)
		}
		team.Name = name
	}
	team.Description = description

	_, err = s.teamRepo.Update(ctx, team)
	return err
}

func (s *TeamService) Delete(ctx context.Context, actorID, teamID string) error {
	if _, err := s.requireCaptain(ctx, actorID, teamID); err != nil {
		return err
	}
	return s.teamRepo.Delete(ctx, teamID)
}

func (s *TeamService) Kick(ctx context.Context, actorID, teamID, userID string) error {
	team, err := s.requireCaptain(ctx, actorID, teamID)
	if err != nil {
		return err
	}
	if userID == team.CaptainID {
		return fmt.Errorf("%w: the captain cannot be kicked", errorz.ErrValidation)
	}
	return s.teamRepo.RemoveMember(ctx, teamID, userID)
}

// RequestToJoin notifies the captain; the membership is only created when the
// captain accepts.
func (s *TeamService) RequestToJoin(ctx context.Context, teamID, candidateID string) error {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}

	if _, err = s.teamRepo.GetByUserID(ctx, candidateID); err == nil {
		return errorz.ErrAlreadyInTeam
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	candidate, err := s.profileRepo.GetByUserID(ctx, candidateID)
	if err != nil {
		return err
	}

	data, err := json.Marshal(entity.NotificationData{
		TeamID:      teamID,
		CandidateID: candidateID,
	})
	if err != nil {
		return err
	}

	_, err = s.notificationRepo.Create(ctx, &entity.Notification{
		UserID:  team.CaptainID,
		Type:    entity.NotificationApplication,
		Message: fmt.Sprintf("%s wants to join %s", candidate.Username, team.Name),
		Data:    data,
	})
	if err != nil {
		return err
	}

	s.notificationService.SendApplicationEmail(ctx, team.CaptainID, candidate.Username, team.Name)
	return nil
}

func (s *TeamService) Invite(ctx context.Context, actorID, teamID, candidateID string) error {
	team, err := s.requireCaptain(ctx, actorID, teamID)
	if err != nil {
		return err
	}

	if _, err = s.teamRepo.GetMember(ctx, teamID, candidateID); err == nil {
		return errorz.ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	data, err := json.Marshal(entity.NotificationData{
		TeamID: teamID,
	})
	if err != nil {
		return err
	}

	invite := &entity.TeamInvitation{
		TeamID: teamID,
		UserID: candidateID,
	}
	notification := &entity.Notification{
		UserID:  candidateID,
		Type:    entity.NotificationInvite,
		Message: fmt.Sprintf("You have been invited to join %s", team.Name),
		Data:    data,
	}

	if err = s.inviteRepo.CreateWithNotification(ctx, invite, notification); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorz.ErrAlreadyInvited
		}
		return err
	}

	s.notificationService.SendInviteEmail(ctx, candidateID, team.Name)
	return nil
}

func (s *TeamService) PendingInvites(ctx context.Context, actorID, teamID string) ([]string, error) {
	if _, err := s.requireCaptain(ctx, actorID, teamID); err != nil {
		return nil, err
	}
	return s.inviteRepo.GetPendingUserIDs(ctx, teamID)
}

func (s *TeamService) AcceptInvite(ctx context.Context, userID, notificationID, teamID string) error {
	if _, err := s.getTeam(ctx, teamID); err != nil {
		return err
	}
	return s.inviteRepo.Accept(ctx, teamID, userID, notificationID)
}

func (s *TeamService) RejectInvite(ctx context.Context, userID, notificationID, teamID string) error {
	return s.inviteRepo.Reject(ctx, teamID, userID, notificationID)
}

func (s *TeamService) AcceptApplication(ctx context.Context, actorID, notificationID, teamID, candidateID string) error {
	if _, err := s.requireCaptain(ctx, actorID, teamID); err != nil {
		return err
	}
	return s.inviteRepo.AcceptApplication(ctx, teamID, actorID, candidateID, notificationID)
}

func (s *TeamService) getTeam(ctx context.Context, teamID string) (*entity.Team, error) {
	team, err := s.teamRepo.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *TeamService) requireCaptain(ctx context.Context, actorID, teamID string) (*entity.Team, error) {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.CaptainID != actorID {
		return nil, errorz.ErrNotCaptain
	}
	return team, nil
}
