package models

import "errors"

// Sentinel errors returned by the repository and service layers. Handlers map
// these onto HTTP status codes with errors.Is.
var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrOptionNotFound = errors.New("poll option not found")
	ErrDuplicateVote  = errors.New("user already voted for this option")
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailTaken     = errors.New("email already in use")
)
