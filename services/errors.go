package services

import "errors"

// Shared sentinel errors, mapped to HTTP statuses in the handlers package.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Uniqueness conflicts surfaced by the storage layer. These cover races
	// the pre-validation cannot see, e.g. two concurrent registrations of
	// the same team name.
	ErrTeamNameConflict         = errors.New("team name is already taken")
	ErrParticipantEmailConflict = errors.New("participant email is already registered for this team")

	ErrAuthInvalidCredentials = errors.New("invalid email or password")
)
