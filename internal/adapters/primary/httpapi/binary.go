package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/ports/primary"
	"github.com/campushub/backend/pkg/logger"
)

// maxBannerSize caps banner uploads at 5 MiB.
const maxBannerSize = 5 << 20

// BinaryHandler serves the non-JSON routes: the iCal feed, attendee exports,
// check-in QR codes and banner uploads.
type BinaryHandler struct {
	eventService primary.EventService
	clubService  primary.ClubService
}

func NewBinaryHandler(eventService primary.EventService, clubService primary.ClubService) *BinaryHandler {
	return &BinaryHandler{
		eventService: eventService,
		clubService:  clubService,
	}
}

func (h *BinaryHandler) HandleCalendarICS(w http.ResponseWriter, r *http.Request) {
	payload, err := h.eventService.CalendarICS(r.Context())
	if err != nil {
		writeBinaryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
	_, _ = w.Write(payload)
}

func (h *BinaryHandler) HandleAttendeesXLSX(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(UserIDKey).(string)
	eventID := chi.URLParam(r, "eventID")

	payload, err := h.eventService.AttendeesXLSX(r.Context(), userID, eventID)
	if err != nil {
		writeBinaryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendees_%s.xlsx"`, eventID))
	_, _ = w.Write(payload)
}

func (h *BinaryHandler) HandleCheckInQR(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(UserIDKey).(string)
	eventID := chi.URLParam(r, "eventID")

	payload, err := h.eventService.CheckInQR(r.Context(), userID, eventID)
	if err != nil {
		writeBinaryError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(payload)
}

func (h *BinaryHandler) HandleBannerUpload(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(UserIDKey).(string)
	clubID := chi.URLParam(r, "clubID")

	if err := r.ParseMultipartForm(maxBannerSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("banner")
	if err != nil {
		http.Error(w, "banner file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/png" && contentType != "image/jpeg" {
		http.Error(w, "banner must be png or jpeg", http.StatusUnsupportedMediaType)
		return
	}

	url, err := h.clubService.SetBanner(r.Context(), userID, clubID, file, header.Size, contentType)
	if err != nil {
		writeBinaryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"banner_url": url})
}

func writeBinaryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errorz.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, errorz.ErrUnauthorized):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, errorz.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, errorz.ErrValidation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.Log.Errorf("unhandled error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
