package get_available_slots

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// Request availability query for a calendar date.
// Meal is optional; when nil both meals are reported.
type Request struct {
	Date time.Time
	Meal *domain.MealType
}

// MealAvailability availability and bookable slots for one meal on the date
type MealAvailability struct {
	Meal      domain.MealType
	Available bool
	Slots     []string // empty when the meal is not served that day
}

// Response calendar-rendering payload for one date
type Response struct {
	Date       time.Time
	DayName    string
	DayService domain.DayService
	Open       bool
	Meals      []MealAvailability
}
