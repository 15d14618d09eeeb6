package create_booking

import "errors"

// Rejection sentinels. These are expected outcomes of validation, not
// failures: each one maps to a specific, actionable message for the customer.
var (
	// ErrInvalidInput is returned for malformed or incomplete input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPrivacyConsentRequired is returned when the privacy policy was not accepted
	ErrPrivacyConsentRequired = errors.New("create_booking: privacy consent is required")

	// ErrBookingsClosed is returned once the event closing instant has passed
	ErrBookingsClosed = errors.New("create_booking: bookings are closed")

	// ErrBookingsDisabled is returned while the operator has suspended intake
	ErrBookingsDisabled = errors.New("create_booking: bookings are disabled")

	// ErrRestaurantClosed is returned when the restaurant is closed on the requested date
	ErrRestaurantClosed = errors.New("create_booking: restaurant is closed on this date")

	// ErrMealNotServed is returned when the requested meal is not served on the requested date
	ErrMealNotServed = errors.New("create_booking: meal is not served on this date")

	// ErrInvalidTimeSlot is returned when the time is not a bookable slot for the meal
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("create_booking: internal error")
)
