package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/ports/primary"
	"github.com/campushub/backend/internal/ports/secondary"
	"github.com/campushub/backend/pkg/logger"
)

const (
	GitHubAuthorizeEndpoint = "https://github.com/login/oauth/authorize"
	GitHubTokenEndpoint     = "https://github.com/login/oauth/access_token"
	GitHubUserAPI           = "https://api.github.com/user"
	GitHubUserEmailsAPI     = "https://api.github.com/user/emails"
)

const authCookieName = "auth_token"

type contextKey string

// UserIDKey carries the authenticated user's ID through the request context.
const UserIDKey contextKey = "user_id"

type AuthOptions struct {
	JWTSecret    string
	TokenTTL     time.Duration
	ClientID     string
	ClientSecret string
	RedirectURL  string
	FrontendURL  string
}

type AuthHandler struct {
	userService primary.UserService
	states      secondary.StateStore
	oauthConfig *oauth2.Config

	jwtSecret   string
	tokenTTL    time.Duration
	frontendURL string
}

func NewAuthHandler(userService primary.UserService, states secondary.StateStore, opts AuthOptions) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		states:      states,
		oauthConfig: &oauth2.Config{
			ClientID:     opts.ClientID,
			ClientSecret: opts.ClientSecret,
			RedirectURL:  opts.RedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  GitHubAuthorizeEndpoint,
				TokenURL: GitHubTokenEndpoint,
			},
		},
		jwtSecret:   opts.JWTSecret,
		tokenTTL:    opts.TokenTTL,
		frontendURL: opts.FrontendURL,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(r.Context(), req.Email, req.Password, req.Username, req.FullName)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.issueSession(w, user.ID)
	writeJSON(w, http.StatusCreated, map[string]string{"user_id": user.ID})
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}

	h.issueSession(w, user.ID)
	writeJSON(w, http.StatusOK, map[string]string{"user_id": user.ID})
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Path:     "/",
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) HandleGitHubLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	if err := h.states.Set(r.Context(), state); err != nil {
		logger.Log.Errorf("failed to store oauth state: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) HandleGitHubCallback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	ok, err := h.states.Check(r.Context(), state)
	if err != nil {
		logger.Log.Errorf("failed to check oauth state: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "invalid oauth state", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "failed to exchange token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(r.Context(), token)

	ghUser, err := fetchGitHubUser(client)
	if err != nil {
		logger.Log.Errorf("failed to fetch github user: %v", err)
		http.Error(w, "failed to get user info", http.StatusInternalServerError)
		return
	}

	user, err := h.userService.GetOrCreateFromGitHub(r.Context(),
		fmt.Sprintf("%d", ghUser.ID), ghUser.Email, ghUser.Login, ghUser.Name, ghUser.AvatarURL)
	if err != nil {
		logger.Log.Errorf("failed to resolve github login: %v", err)
		http.Error(w, "failed to log in", http.StatusInternalServerError)
		return
	}

	h.issueSession(w, user.ID)
	http.Redirect(w, r, h.frontendURL, http.StatusTemporaryRedirect)
}

type githubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

func fetchGitHubUser(client *http.Client) (*githubUser, error) {
	resp, err := client.Get(GitHubUserAPI)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user githubUser
	if err = json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	// The profile email is often hidden; fall back to the primary address
	// from the emails endpoint.
	if user.Email == "" {
		if email, errEmail := fetchPrimaryEmail(client); errEmail == nil {
			user.Email = email
		}
	}
	return &user, nil
}

func fetchPrimaryEmail(client *http.Client) (string, error) {
	resp, err := client.Get(GitHubUserEmailsAPI)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return "", errors.New("no primary email")
}

func (h *AuthHandler) GenerateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(h.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, userID string) {
	token, err := h.GenerateToken(userID)
	if err != nil {
		logger.Log.Errorf("failed to generate token: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		Path:     "/",
	})
}

// AuthMiddleware authenticates the JWT cookie and stores the user ID in the
// request context.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := h.userIDFromRequest(r)
		if err != nil {
			http.Error(w, "unauthorized: "+err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthMiddleware attaches the user ID when a valid cookie is present
// but lets anonymous requests through, for routes that only personalize.
func (h *AuthHandler) OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, err := h.userIDFromRequest(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
		}
		next.ServeHTTP(w, r)
	})
}

func (h *AuthHandler) userIDFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(authCookieName)
	if err != nil {
		return "", errors.New("no token found")
	}

	token, err := jwt.Parse(cookie.Value, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid token claims")
	}
	return userID, nil
}

// userIDFromContext is the helper huma handlers use after AuthMiddleware ran.
func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", errorz.ErrUnauthorized
	}
	return userID, nil
}

func viewerIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Log.Errorf("failed to write response: %v", err)
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errorz.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, errorz.ErrEmailTaken), errors.Is(err, errorz.ErrUsernameTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, errorz.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.Log.Errorf("auth error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
