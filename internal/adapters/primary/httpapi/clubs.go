package httpapi

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/ports/primary"
)

type ClubHandler struct {
	clubService primary.ClubService
}

func NewClubHandler(clubService primary.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

type listClubsResponse struct {
	Body []entity.Club
}

func (h *ClubHandler) HandleList(ctx context.Context, _ *struct{}) (*listClubsResponse, error) {
	clubs, err := h.clubService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &listClubsResponse{Body: clubs}, nil
}

type clubRequest struct {
	ClubID string `path:"clubID" doc:"Club ID"`
}

type clubResponse struct {
	Body entity.Club
}

func (h *ClubHandler) HandleGet(ctx context.Context, input *clubRequest) (*clubResponse, error) {
	club, err := h.clubService.Get(ctx, input.ClubID)
	if err != nil {
		return nil, mapError(err)
	}
	return &clubResponse{Body: *club}, nil
}

type createClubRequest struct {
	Body struct {
		Name        string `json:"name" doc:"Club name"`
		Description string `json:"description,omitempty"`
		Category    string `json:"category,omitempty"`
	}
}

func (h *ClubHandler) HandleCreate(ctx context.Context, input *createClubRequest) (*clubResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	club, err := h.clubService.Create(ctx, userID, &entity.Club{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Category:    input.Body.Category,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &clubResponse{Body: *club}, nil
}

type messageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

func message(text string) *messageResponse {
	res := &messageResponse{}
	res.Body.Message = text
	return res
}

func (h *ClubHandler) HandleDelete(ctx context.Context, input *clubRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.clubService.Delete(ctx, userID, input.ClubID); err != nil {
		return nil, mapError(err)
	}
	return message("club deleted"), nil
}

func (h *ClubHandler) HandleApply(ctx context.Context, input *clubRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.clubService.Apply(ctx, input.ClubID, userID); err != nil {
		return nil, mapError(err)
	}
	return message("application submitted"), nil
}

type processApplicationRequest struct {
	MembershipID string `path:"membershipID" doc:"Membership ID"`
	Body         struct {
		Action string `json:"action" enum:"approve,reject" doc:"approve or reject"`
	}
}

func (h *ClubHandler) HandleProcessApplication(ctx context.Context, input *processApplicationRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.clubService.ProcessApplication(ctx, userID, input.MembershipID, input.Body.Action); err != nil {
		return nil, mapError(err)
	}
	return message("application processed"), nil
}

type assignRoleRequest struct {
	ClubID string `path:"clubID" doc:"Club ID"`
	Body   struct {
		UserID string `json:"user_id" doc:"User to appoint"`
		Role   string `json:"role" enum:"admin,moderator,member"`
	}
}

func (h *ClubHandler) HandleAssignRole(ctx context.Context, input *assignRoleRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.clubService.AssignRole(ctx, userID, input.ClubID, input.Body.UserID, entity.ClubRole(input.Body.Role)); err != nil {
		return nil, mapError(err)
	}
	return message("role assigned"), nil
}

type membershipRequest struct {
	MembershipID string `path:"membershipID" doc:"Membership ID"`
}

func (h *ClubHandler) HandleRemoveLeader(ctx context.Context, input *membershipRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.clubService.RemoveLeader(ctx, userID, input.MembershipID); err != nil {
		return nil, mapError(err)
	}
	return message("leader removed"), nil
}

type myMembershipResponse struct {
	Body entity.ClubMember
}

func (h *ClubHandler) HandleMyMembership(ctx context.Context, input *clubRequest) (*myMembershipResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	member, err := h.clubService.MyMembership(ctx, input.ClubID, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return &myMembershipResponse{Body: *member}, nil
}

type myMembershipsResponse struct {
	Body []dto.MembershipSummary
}

func (h *ClubHandler) HandleMyMemberships(ctx context.Context, _ *struct{}) (*myMembershipsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	memberships, err := h.clubService.MyMemberships(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return &myMembershipsResponse{Body: memberships}, nil
}

type memberListResponse struct {
	Body []dto.ClubMemberInfo
}

func (h *ClubHandler) HandleApplicants(ctx context.Context, input *clubRequest) (*memberListResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	applicants, err := h.clubService.Applicants(ctx, userID, input.ClubID)
	if err != nil {
		return nil, mapError(err)
	}
	return &memberListResponse{Body: applicants}, nil
}

func (h *ClubHandler) HandleMembers(ctx context.Context, input *clubRequest) (*memberListResponse, error) {
	members, err := h.clubService.Members(ctx, input.ClubID)
	if err != nil {
		return nil, mapError(err)
	}
	return &memberListResponse{Body: members}, nil
}

func (h *ClubHandler) HandleLeaders(ctx context.Context, input *clubRequest) (*memberListResponse, error) {
	leaders, err := h.clubService.Leaders(ctx, input.ClubID)
	if err != nil {
		return nil, mapError(err)
	}
	return &memberListResponse{Body: leaders}, nil
}

type postAnnouncementRequest struct {
	ClubID string `path:"clubID" doc:"Club ID"`
	Body   struct {
		Title   string `json:"title"`
		Content string `json:"content,omitempty"`
	}
}

func (h *ClubHandler) HandlePostAnnouncement(ctx context.Context, input *postAnnouncementRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.clubService.PostAnnouncement(ctx, userID, input.ClubID, input.Body.Title, input.Body.Content); err != nil {
		return nil, mapError(err)
	}
	return message("announcement posted"), nil
}

type announcementsResponse struct {
	Body []dto.Announcement
}

func (h *ClubHandler) HandleAnnouncements(ctx context.Context, input *clubRequest) (*announcementsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	announcements, err := h.clubService.Announcements(ctx, userID, input.ClubID)
	if err != nil {
		return nil, mapError(err)
	}
	return &announcementsResponse{Body: announcements}, nil
}
