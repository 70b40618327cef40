package domain

import "errors"

var (
	// ErrEnrollFailed and ErrCancelFailed wrap an API rejection of an
	// enrollment action. The overlay is left untouched when either is returned.
	ErrEnrollFailed = errors.New("enroll failed")
	ErrCancelFailed = errors.New("could not cancel enrollment")

	ErrActionInProgress  = errors.New("an action is already in progress for this employee")
	ErrInvalidEmployeeID = errors.New("invalid employee id")
	ErrNotPoolMember     = errors.New("employee is not a rewards pool member")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidMode        = errors.New("mode must be admin or commuter")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrSessionExpired     = errors.New("session expired")
	ErrForbidden          = errors.New("access forbidden")

	ErrUpstream = errors.New("commute api unavailable")
)
