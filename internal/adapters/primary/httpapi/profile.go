package httpapi

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/ports/primary"
)

type ProfileHandler struct {
	userService primary.UserService
}

func NewProfileHandler(userService primary.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

type profileResponse struct {
	Body entity.Profile
}

func (h *ProfileHandler) HandleMe(ctx context.Context, _ *struct{}) (*profileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	profile, err := h.userService.MyProfile(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return &profileResponse{Body: *profile}, nil
}

type updateProfileRequest struct {
	Body dto.ProfileUpdate
}

func (h *ProfileHandler) HandleUpdateMe(ctx context.Context, input *updateProfileRequest) (*profileResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	profile, err := h.userService.UpdateMyProfile(ctx, userID, input.Body)
	if err != nil {
		return nil, mapError(err)
	}
	return &profileResponse{Body: *profile}, nil
}

type searchUsersRequest struct {
	Query string `query:"q" doc:"Username prefix to search for"`
}

type searchUsersResponse struct {
	Body []dto.ProfileSummary
}

func (h *ProfileHandler) HandleSearch(ctx context.Context, input *searchUsersRequest) (*searchUsersResponse, error) {
	summaries, err := h.userService.Search(ctx, input.Query)
	if err != nil {
		return nil, mapError(err)
	}
	return &searchUsersResponse{Body: summaries}, nil
}
