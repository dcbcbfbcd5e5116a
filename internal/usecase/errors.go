package usecase

import "errors"

// Service errors. Handlers map these to HTTP statuses; everything else is
// treated as an internal error.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrForbidden          = errors.New("access denied")
	ErrValidation         = errors.New("validation failed")
	ErrSchedulingConflict = errors.New("screening time conflicts with an existing screening")
	ErrInvalidSeat        = errors.New("seat is outside the auditorium layout")
	ErrSeatAlreadyBooked  = errors.New("seat is already booked for this screening")
	ErrPastDate           = errors.New("date is earlier than today")
	ErrInvalidSignature   = errors.New("payment event signature is invalid")
)
