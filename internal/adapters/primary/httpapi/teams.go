package httpapi

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/ports/primary"
)

type TeamHandler struct {
	teamService primary.TeamService
}

func NewTeamHandler(teamService primary.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type createTeamRequest struct {
	Body struct {
		Name        string   `json:"name"`
		Description string   `json:"description,omitempty"`
		Tags        []string `json:"tags,omitempty"`
	}
}

type teamResponse struct {
	Body entity.Team
}

func (h *TeamHandler) HandleCreate(ctx context.Context, input *createTeamRequest) (*teamResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	team, err := h.teamService.Create(ctx, userID, input.Body.Name, input.Body.Description, input.Body.Tags)
	if err != nil {
		return nil, mapError(err)
	}
	return &teamResponse{Body: *team}, nil
}

func (h *TeamHandler) HandleMyTeam(ctx context.Context, _ *struct{}) (*teamResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	team, err := h.teamService.MyTeam(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return &teamResponse{Body: *team}, nil
}

type teamListResponse struct {
	Body []entity.Team
}

func (h *TeamHandler) HandleList(ctx context.Context, _ *struct{}) (*teamListResponse, error) {
	teams, err := h.teamService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &teamListResponse{Body: teams}, nil
}

type teamRequest struct {
	TeamID string `path:"teamID" doc:"Team ID"`
}

type teamMembersResponse struct {
	Body []dto.TeamMemberInfo
}

func (h *TeamHandler) HandleMembers(ctx context.Context, input *teamRequest) (*teamMembersResponse, error) {
	members, err := h.teamService.Members(ctx, input.TeamID)
	if err != nil {
		return nil, mapError(err)
	}
	return &teamMembersResponse{Body: members}, nil
}

type updateTeamRequest struct {
	TeamID string `path:"teamID" doc:"Team ID"`
	Body   struct {
		Name        string `json:"name,omitempty"`
		Description string `json:"description,omitempty"`
	}
}

func (h *TeamHandler) HandleUpdate(ctx context.Context, input *updateTeamRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.teamService.Update(ctx, userID, input.TeamID, input.Body.Name, input.Body.Description); err != nil {
		return nil, mapError(err)
	}
	return message("team updated"), nil
}

func (h *TeamHandler) HandleDelete(ctx context.Context, input *teamRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.teamService.Delete(ctx, userID, input.TeamID); err != nil {
		return nil, mapError(err)
	}
	return message("team deleted"), nil
}

type kickRequest struct {
	TeamID string `path:"teamID" doc:"Team ID"`
	UserID string `path:"userID" doc:"Member to remove"`
}

func (h *TeamHandler) HandleKick(ctx context.Context, input *kickRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.teamService.Kick(ctx, userID, input.TeamID, input.UserID); err != nil {
		return nil, mapError(err)
	}
	return message("member removed"), nil
}

func (h *TeamHandler) HandleRequestToJoin(ctx context.Context, input *teamRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.teamService.RequestToJoin(ctx, input.TeamID, userID); err != nil {
		return nil, mapError(err)
	}
	return message("join request sent"), nil
}

type inviteRequest struct {
	TeamID string `path:"teamID" doc:"Team ID"`
	Body   struct {
		UserID string `json:"user_id" doc:"User to invite"`
	}
}

func (h *TeamHandler) HandleInvite(ctx context.Context, input *inviteRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.teamService.Invite(ctx, userID, input.TeamID, input.Body.UserID); err != nil {
		return nil, mapError(err)
	}
	return message("invitation sent"), nil
}

type pendingInvitesResponse struct {
	Body []string
}

func (h *TeamHandler) HandlePendingInvites(ctx context.Context, input *teamRequest) (*pendingInvitesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	userIDs, err := h.teamService.PendingInvites(ctx, userID, input.TeamID)
	if err != nil {
		return nil, mapError(err)
	}
	return &pendingInvitesResponse{Body: userIDs}, nil
}

type respondInviteRequest struct {
	TeamID string `path:"teamID" doc:"Team ID"`
	Body   struct {
		NotificationID string `json:"notification_id" doc:"Inbox notification to mark read"`
	}
}

func (h *TeamHandler) HandleAcceptInvite(ctx context.Context, input *respondInviteRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.teamService.AcceptInvite(ctx, userID, input.Body.NotificationID, input.TeamID); err != nil {
		return nil, mapError(err)
	}
	return message("invitation accepted"), nil
}

func (h *TeamHandler) HandleRejectInvite(ctx context.Context, input *respondInviteRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.teamService.RejectInvite(ctx, userID, input.Body.NotificationID, input.TeamID); err != nil {
		return nil, mapError(err)
	}
	return message("invitation rejected"), nil
}

type acceptApplicationRequest struct {
	TeamID string `path:"teamID" doc:"Team ID"`
	Body   struct {
		NotificationID string `json:"notification_id" doc:"Inbox notification to mark read"`
		CandidateID    string `json:"candidate_id" doc:"Applying user"`
	}
}

func (h *TeamHandler) HandleAcceptApplication(ctx context.Context, input *acceptApplicationRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.teamService.AcceptApplication(ctx, userID, input.Body.NotificationID, input.TeamID, input.Body.CandidateID); err != nil {
		return nil, mapError(err)
	}
	return message("application accepted"), nil
}
