package create_booking

import (
	"fmt"
	"strings"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// validateRequest validates the submission's own fields, before any gate
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name too long", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.CustomerEmail)
	if email == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid customer email", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.MealType.Valid() {
		return fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, req.MealType)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Guests < domain.MinGuests {
		return fmt.Errorf("%w: at least %d guest required", ErrInvalidInput, domain.MinGuests)
	}
	if req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: at most %d guests allowed", ErrInvalidInput, domain.MaxGuests)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	if !req.PrivacyConsent {
		return ErrPrivacyConsentRequired
	}

	return nil
}
