package get_available_slots

import (
	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	getAvailableSlots "github.com/torridellacqua/TDA-ReservationService/internal/usecase/get_available_slots"
)

// MealAvailabilityResponse availability of one meal on the requested date
type MealAvailabilityResponse struct {
	Meal      string   `json:"meal"`
	Available bool     `json:"available"`
	Slots     []string `json:"slots"`
}

// AvailabilityResponse HTTP response model for calendar rendering
type AvailabilityResponse struct {
	Date    string                     `json:"date"`
	DayName string                     `json:"dayName"`
	Service string                     `json:"service"`
	Open    bool                       `json:"open"`
	Meals   []MealAvailabilityResponse `json:"meals"`
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		DayName: resp.DayName,
		Service: string(resp.DayService),
		Open:    resp.Open,
		Meals:   make([]MealAvailabilityResponse, 0, len(resp.Meals)),
	}

	for _, m := range resp.Meals {
		out.Meals = append(out.Meals, MealAvailabilityResponse{
			Meal:      string(m.Meal),
			Available: m.Available,
			Slots:     m.Slots,
		})
	}

	return out
}
