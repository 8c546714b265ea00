package httpapi

import (
	"context"

	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/ports/primary"
)

type ContentHandler struct {
	leaderboardService primary.LeaderboardService
	resourceService    primary.ResourceService
	projectService     primary.ProjectService
	pollService        primary.PollService
}

func NewContentHandler(
	leaderboardService primary.LeaderboardService,
	resourceService primary.ResourceService,
	projectService primary.ProjectService,
	pollService primary.PollService,
) *ContentHandler {
	return &ContentHandler{
		leaderboardService: leaderboardService,
		resourceService:    resourceService,
		projectService:     projectService,
		pollService:        pollService,
	}
}

// Leaderboard

type leaderboardResponse struct {
	Body []dto.LeaderboardEntry
}

func (h *ContentHandler) HandleLeaderboard(ctx context.Context, _ *struct{}) (*leaderboardResponse, error) {
	entries, err := h.leaderboardService.Global(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return &leaderboardResponse{Body: entries}, nil
}

type eventLeaderboardRequest struct {
	EventID string `path:"eventID" doc:"Event ID"`
}

type eventLeaderboardResponse struct {
	Body []dto.TeamScore
}

func (h *ContentHandler) HandleEventLeaderboard(ctx context.Context, input *eventLeaderboardRequest) (*eventLeaderboardResponse, error) {
	scores, err := h.leaderboardService.Event(ctx, input.EventID)
	if err != nil {
		return nil, mapError(err)
	}
	return &eventLeaderboardResponse{Body: scores}, nil
}

// Resources

type listResourcesRequest struct {
	Category string `query:"category" doc:"Optional category filter"`
}

type resourceListResponse struct {
	Body []entity.Resource
}

func (h *ContentHandler) HandleListResources(ctx context.Context, input *listResourcesRequest) (*resourceListResponse, error) {
	resources, err := h.resourceService.List(ctx, input.Category)
	if err != nil {
		return nil, mapError(err)
	}
	return &resourceListResponse{Body: resources}, nil
}

type addResourceRequest struct {
	Body struct {
		Title       string   `json:"title"`
		Description string   `json:"description,omitempty"`
		URL         string   `json:"url"`
		Category    string   `json:"category,omitempty"`
		Tags        []string `json:"tags,omitempty"`
	}
}

type resourceResponse struct {
	Body entity.Resource
}

func (h *ContentHandler) HandleAddResource(ctx context.Context, input *addResourceRequest) (*resourceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resource, err := h.resourceService.Add(ctx, userID, &entity.Resource{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		URL:         input.Body.URL,
		Category:    input.Body.Category,
		Tags:        input.Body.Tags,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &resourceResponse{Body: *resource}, nil
}

// Showcase

type projectListResponse struct {
	Body []dto.ProjectInfo
}

func (h *ContentHandler) HandleListProjects(ctx context.Context, _ *struct{}) (*projectListResponse, error) {
	projects, err := h.projectService.List(ctx, viewerIDFromContext(ctx))
	if err != nil {
		return nil, mapError(err)
	}
	return &projectListResponse{Body: projects}, nil
}

type submitProjectRequest struct {
	Body struct {
		Title       string   `json:"title"`
		Description string   `json:"description,omitempty"`
		RepoURL     string   `json:"repo_url,omitempty"`
		DemoURL     string   `json:"demo_url,omitempty"`
		TechTags    []string `json:"tech_tags,omitempty"`
	}
}

type projectResponse struct {
	Body entity.Project
}

func (h *ContentHandler) HandleSubmitProject(ctx context.Context, input *submitProjectRequest) (*projectResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	project, err := h.projectService.Submit(ctx, userID, &entity.Project{
		Title:       input.Body.Title,
		Description: input.Body.Description,
		RepoURL:     input.Body.RepoURL,
		DemoURL:     input.Body.DemoURL,
		TechTags:    input.Body.TechTags,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &projectResponse{Body: *project}, nil
}

type projectRequest struct {
	ProjectID string `path:"projectID" doc:"Project ID"`
}

func (h *ContentHandler) HandleLikeProject(ctx context.Context, input *projectRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.projectService.Like(ctx, input.ProjectID, userID); err != nil {
		return nil, mapError(err)
	}
	return message("liked"), nil
}

func (h *ContentHandler) HandleUnlikeProject(ctx context.Context, input *projectRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.projectService.Unlike(ctx, input.ProjectID, userID); err != nil {
		return nil, mapError(err)
	}
	return message("unliked"), nil
}

// Polls

type voteRequest struct {
	PollID string `path:"pollID" doc:"Poll ID"`
	Body   struct {
		OptionID string `json:"option_id"`
	}
}

func (h *ContentHandler) HandleVote(ctx context.Context, input *voteRequest) (*messageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if err = h.pollService.Vote(ctx, input.PollID, userID, input.Body.OptionID); err != nil {
		return nil, mapError(err)
	}
	return message("vote recorded"), nil
}

type pollResultsRequest struct {
	PollID string `path:"pollID" doc:"Poll ID"`
}

type pollResultsResponse struct {
	Body map[string]int64
}

func (h *ContentHandler) HandlePollResults(ctx context.Context, input *pollResultsRequest) (*pollResultsResponse, error) {
	results, err := h.pollService.Results(ctx, input.PollID)
	if err != nil {
		return nil, mapError(err)
	}
	return &pollResultsResponse{Body: results}, nil
}

// Debug endpoints, kept for manual smoke-testing against a live deployment.

type debugGitHubRequest struct {
	RepoURL string `query:"repo" doc:"GitHub repository URL"`
}

type debugGitHubResponse struct {
	Body dto.RepoDetails
}

func (h *ContentHandler) HandleDebugGitHub(ctx context.Context, input *debugGitHubRequest) (*debugGitHubResponse, error) {
	details, err := h.projectService.RepoDetails(ctx, input.RepoURL)
	if err != nil {
		return nil, mapError(err)
	}
	return &debugGitHubResponse{Body: *details}, nil
}

func (h *ContentHandler) HandleDebugLeaderboard(ctx context.Context, _ *struct{}) (*leaderboardResponse, error) {
	return h.HandleLeaderboard(ctx, nil)
}

func (h *ContentHandler) HandleDebugVote(ctx context.Context, input *voteRequest) (*messageResponse, error) {
	return h.HandleVote(ctx, input)
}
