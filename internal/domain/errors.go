package domain

import "errors"

var (
	ErrChildNotFound   = errors.New("child not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Availability rejections, in the order the validator applies them.
var (
	ErrInvalidDateRange = errors.New("start date is after end date")
	ErrUnknownReference = errors.New("referenced child or class does not exist or is inactive")
	ErrAgeOutOfRange    = errors.New("child age is outside the class age range")
	ErrCapacityExceeded = errors.New("class capacity exceeded for the requested period")
	ErrDuplicateBooking = errors.New("child already has an overlapping booking in this class")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")
)

var (
	ErrValidation         = errors.New("validation error")
	ErrGatewayUnavailable = errors.New("gateway unavailable")
)
