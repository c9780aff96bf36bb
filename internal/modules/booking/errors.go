package booking

import "errors"

var (
	ErrValidation     = errors.New("validation error")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidTime    = errors.New("invalid time")
	ErrPastDate       = errors.New("date is in the past")
	ErrClosedDay      = errors.New("closed on the selected day")
	ErrUnknownService = errors.New("unknown service type")
	ErrConflict       = errors.New("duplicate appointment id")
)
