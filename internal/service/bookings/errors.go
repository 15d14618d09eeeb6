package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the reservation does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
