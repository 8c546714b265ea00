package errorz

import "errors"

// Sentinel domain errors. Repositories translate backend failures
// (gorm.ErrDuplicatedKey, gorm.ErrRecordNotFound) into these; the HTTP
// adapter maps them to status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("login required")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")

	ErrClubNameTaken  = errors.New("a club with this name already exists")
	ErrAlreadyApplied = errors.New("already applied or joined")

	ErrEventFull         = errors.New("event is full")
	ErrNotRegistered     = errors.New("not registered for this event")
	ErrRegistrationEnded = errors.New("event has already started")

	ErrAlreadyInTeam  = errors.New("you are already in a team")
	ErrAlreadyMember  = errors.New("you are already in this team")
	ErrAlreadyInvited = errors.New("invite already sent")
	ErrNotCaptain     = errors.New("only the team captain can do this")

	ErrAlreadyLiked = errors.New("project already liked")
	ErrAlreadyVoted = errors.New("you have already voted on this poll")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUsernameTaken      = errors.New("this username is already taken")
)
