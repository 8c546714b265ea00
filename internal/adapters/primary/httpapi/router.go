package httpapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Club         *ClubHandler
	Event        *EventHandler
	Team         *TeamHandler
	Notification *NotificationHandler
	Content      *ContentHandler
	Binary       *BinaryHandler
}

type RouterOptions struct {
	FrontendURL string
}

// NewRouter assembles the full HTTP surface: plain chi routes for auth,
// health and binary payloads, huma-documented JSON routes for everything
// else.
func NewRouter(h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	config := huma.DefaultConfig("Campus Club Hub API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: authCookieName,
		},
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	// Auth routes
	r.Post("/auth/register", h.Auth.HandleRegister)
	r.Post("/auth/login", h.Auth.HandleLogin)
	r.Post("/auth/logout", h.Auth.HandleLogout)
	r.Get("/auth/github/login", h.Auth.HandleGitHubLogin)
	r.Get("/auth/github/callback", h.Auth.HandleGitHubCallback)

	// Public binary routes
	r.Get("/calendar.ics", h.Binary.HandleCalendarICS)

	// Public JSON routes; the viewer is attached when a session cookie is
	// present so lists can be personalized.
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.OptionalAuthMiddleware)
		api := humachi.New(r, config)

		huma.Get(api, "/clubs", h.Club.HandleList)
		huma.Get(api, "/clubs/{clubID}", h.Club.HandleGet)
		huma.Get(api, "/clubs/{clubID}/members", h.Club.HandleMembers)
		huma.Get(api, "/clubs/{clubID}/leaders", h.Club.HandleLeaders)
		huma.Get(api, "/clubs/{clubID}/events", h.Event.HandleClubEvents)
		huma.Get(api, "/events", h.Event.HandleGlobalEvents)
		huma.Get(api, "/events/field-types", h.Event.HandleFieldTypes)
		huma.Get(api, "/events/{eventID}/fields", h.Event.HandleEventFields)
		huma.Get(api, "/teams", h.Team.HandleList)
		huma.Get(api, "/teams/{teamID}/members", h.Team.HandleMembers)
		huma.Get(api, "/leaderboard", h.Content.HandleLeaderboard)
		huma.Get(api, "/events/{eventID}/leaderboard", h.Content.HandleEventLeaderboard)
		huma.Get(api, "/resources", h.Content.HandleListResources)
		huma.Get(api, "/projects", h.Content.HandleListProjects)
		huma.Get(api, "/polls/{pollID}/results", h.Content.HandlePollResults)
		huma.Get(api, "/users/search", h.Profile.HandleSearch)

		huma.Get(api, "/debug/github", h.Content.HandleDebugGitHub)
		huma.Get(api, "/debug/leaderboard", h.Content.HandleDebugLeaderboard)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.AuthMiddleware)
		api := humachi.New(r, config)
		secured := func(o *huma.Operation) {
			o.Security = []map[string][]string{{"cookieAuth": {}}}
		}

		huma.Get(api, "/me", h.Profile.HandleMe, secured)
		huma.Put(api, "/me", h.Profile.HandleUpdateMe, secured)

		huma.Post(api, "/clubs", h.Club.HandleCreate, secured)
		huma.Delete(api, "/clubs/{clubID}", h.Club.HandleDelete, secured)
		huma.Post(api, "/clubs/{clubID}/apply", h.Club.HandleApply, secured)
		huma.Post(api, "/memberships/{membershipID}/process", h.Club.HandleProcessApplication, secured)
		huma.Post(api, "/clubs/{clubID}/roles", h.Club.HandleAssignRole, secured)
		huma.Delete(api, "/memberships/{membershipID}", h.Club.HandleRemoveLeader, secured)
		huma.Get(api, "/clubs/{clubID}/membership", h.Club.HandleMyMembership, secured)
		huma.Get(api, "/memberships", h.Club.HandleMyMemberships, secured)
		huma.Get(api, "/clubs/{clubID}/applicants", h.Club.HandleApplicants, secured)
		huma.Post(api, "/clubs/{clubID}/announcements", h.Club.HandlePostAnnouncement, secured)
		huma.Get(api, "/clubs/{clubID}/announcements", h.Club.HandleAnnouncements, secured)

		huma.Post(api, "/events", h.Event.HandleCreate, secured)
		huma.Delete(api, "/events/{eventID}", h.Event.HandleDelete, secured)
		huma.Post(api, "/events/{eventID}/register", h.Event.HandleRegister, secured)
		huma.Delete(api, "/events/{eventID}/register", h.Event.HandleCancel, secured)
		huma.Get(api, "/events/{eventID}/attendees", h.Event.HandleAttendees, secured)
		huma.Post(api, "/events/{eventID}/checkin", h.Event.HandleMarkPresent, secured)
		huma.Post(api, "/events/{eventID}/rsvp", h.Event.HandleRSVP, secured)

		huma.Post(api, "/teams", h.Team.HandleCreate, secured)
		huma.Get(api, "/teams/my", h.Team.HandleMyTeam, secured)
		huma.Put(api, "/teams/{teamID}", h.Team.HandleUpdate, secured)
		huma.Delete(api, "/teams/{teamID}", h.Team.HandleDelete, secured)
		huma.Delete(api, "/teams/{teamID}/members/{userID}", h.Team.HandleKick, secured)
		huma.Post(api, "/teams/{teamID}/join", h.Team.HandleRequestToJoin, secured)
		huma.Post(api, "/teams/{teamID}/invite", h.Team.HandleInvite, secured)
		huma.Get(api, "/teams/{teamID}/invites", h.Team.HandlePendingInvites, secured)
		huma.Post(api, "/teams/{teamID}/invites/accept", h.Team.HandleAcceptInvite, secured)
		huma.Post(api, "/teams/{teamID}/invites/reject", h.Team.HandleRejectInvite, secured)
		huma.Post(api, "/teams/{teamID}/applications/accept", h.Team.HandleAcceptApplication, secured)

		huma.Get(api, "/notifications", h.Notification.HandleInbox, secured)
		huma.Post(api, "/notifications/{notificationID}/read", h.Notification.HandleMarkRead, secured)
		huma.Post(api, "/notifications/read-all", h.Notification.HandleMarkAllRead, secured)

		huma.Post(api, "/resources", h.Content.HandleAddResource, secured)
		huma.Post(api, "/projects", h.Content.HandleSubmitProject, secured)
		huma.Post(api, "/projects/{projectID}/like", h.Content.HandleLikeProject, secured)
		huma.Delete(api, "/projects/{projectID}/like", h.Content.HandleUnlikeProject, secured)
		huma.Post(api, "/polls/{pollID}/vote", h.Content.HandleVote, secured)

		huma.Post(api, "/debug/vote", h.Content.HandleDebugVote, secured)

		// Binary routes behind auth
		r.Get("/events/{eventID}/attendees.xlsx", h.Binary.HandleAttendeesXLSX)
		r.Get("/events/{eventID}/qr.png", h.Binary.HandleCheckInQR)
		r.Post("/clubs/{clubID}/banner", h.Binary.HandleBannerUpload)
	})

	return r
}
