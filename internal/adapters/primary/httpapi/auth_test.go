package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestAuthHandler(secret string) *AuthHandler {
	return NewAuthHandler(nil, nil, AuthOptions{
		JWTSecret: secret,
		TokenTTL:  time.Hour,
	})
}

func echoUserID(w http.ResponseWriter, r *http.Request) {
	userID := viewerIDFromContext(r.Context())
	_, _ = w.Write([]byte(userID))
}

func requestWithCookie(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: authCookieName, Value: token})
	}
	return req
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	h := newTestAuthHandler("test-secret")

	token, err := h.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("failed generating token: %v", err)
	}

	rec := httptest.NewRecorder()
	h.AuthMiddleware(http.HandlerFunc(echoUserID)).ServeHTTP(rec, requestWithCookie(token))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "user-42" {
		t.Errorf("user id in context = %q, want user-42", got)
	}
}

func TestAuthMiddleware_MissingCookie(t *testing.T) {
	h := newTestAuthHandler("test-secret")

	rec := httptest.NewRecorder()
	h.AuthMiddleware(http.HandlerFunc(echoUserID)).ServeHTTP(rec, requestWithCookie(""))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	other := newTestAuthHandler("other-secret")
	token, err := other.GenerateToken("user-42")
	if err != nil {
		t.Fatalf("failed generating token: %v", err)
	}

	h := newTestAuthHandler("test-secret")
	rec := httptest.NewRecorder()
	h.AuthMiddleware(http.HandlerFunc(echoUserID)).ServeHTTP(rec, requestWithCookie(token))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	h := newTestAuthHandler("test-secret")

	claims := jwt.MapClaims{
		"user_id": "user-42",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed signing expired token: %v", err)
	}

	rec := httptest.NewRecorder()
	h.AuthMiddleware(http.HandlerFunc(echoUserID)).ServeHTTP(rec, requestWithCookie(expired))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestOptionalAuthMiddleware_AnonymousPassesThrough(t *testing.T) {
	h := newTestAuthHandler("test-secret")

	rec := httptest.NewRecorder()
	h.OptionalAuthMiddleware(http.HandlerFunc(echoUserID)).ServeHTTP(rec, requestWithCookie(""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "" {
		t.Errorf("anonymous request carried user id %q", got)
	}
}

func TestOptionalAuthMiddleware_AttachesViewer(t *testing.T) {
	h := newTestAuthHandler("test-secret")

	token, err := h.GenerateToken("viewer-7")
	if err != nil {
		t.Fatalf("failed generating token: %v", err)
	}

	rec := httptest.NewRecorder()
	h.OptionalAuthMiddleware(http.HandlerFunc(echoUserID)).ServeHTTP(rec, requestWithCookie(token))

	if got := rec.Body.String(); got != "viewer-7" {
		t.Errorf("viewer id = %q, want viewer-7", got)
	}
}
