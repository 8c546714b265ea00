package httpapi

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/pkg/logger"
)

// mapError translates domain sentinels into HTTP errors. Anything unmapped is
// logged and surfaced as a 500 without the internal message.
func mapError(err error) error {
	switch {
	case errors.Is(err, errorz.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, errorz.ErrUnauthorized),
		errors.Is(err, errorz.ErrInvalidCredentials):
		return huma.Error401Unauthorized(err.Error())
	case errors.Is(err, errorz.ErrForbidden),
		errors.Is(err, errorz.ErrNotCaptain):
		return huma.Error403Forbidden(err.Error())
	case errors.Is(err, errorz.ErrValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, errorz.ErrClubNameTaken),
		errors.Is(err, errorz.ErrAlreadyApplied),
		errors.Is(err, errorz.ErrEventFull),
		errors.Is(err, errorz.ErrAlreadyInTeam),
		errors.Is(err, errorz.ErrAlreadyMember),
		errors.Is(err, errorz.ErrAlreadyInvited),
		errors.Is(err, errorz.ErrAlreadyLiked),
		errors.Is(err, errorz.ErrAlreadyVoted),
		errors.Is(err, errorz.ErrEmailTaken),
		errors.Is(err, errorz.ErrUsernameTaken),
		errors.Is(err, errorz.ErrRegistrationEnded):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, errorz.ErrNotRegistered):
		return huma.Error400BadRequest(err.Error())
	default:
		logger.Log.Errorf("unhandled error: %v", err)
		return huma.Error500InternalServerError("internal error")
	}
}
