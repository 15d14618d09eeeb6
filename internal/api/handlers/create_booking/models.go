package create_booking

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	createBooking "github.com/torridellacqua/TDA-ReservationService/internal/usecase/create_booking"
	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName     string  `json:"customerName"`
	CustomerEmail    string  `json:"customerEmail"`
	CustomerPhone    string  `json:"customerPhone"`
	Date             string  `json:"date"`     // "2026-02-14"
	MealType         string  `json:"mealType"` // "pranzo" | "cena"
	Time             string  `json:"time"`     // "12:30"
	Guests           int     `json:"guests"`
	Notes            *string `json:"notes,omitempty"`
	PrivacyConsent   bool    `json:"privacyConsent"`
	MarketingConsent bool    `json:"marketingConsent"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Date          string  `json:"date"`
	MealType      string  `json:"mealType"`
	Time          string  `json:"time"`
	Guests        int     `json:"guests"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// CreateBookingResponse HTTP envelope for an accepted submission
type CreateBookingResponse struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest converts the HTTP request into the use case model,
// parsing the civil date and the slot time
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		Date:             date,
		MealType:         domain.MealType(r.MealType),
		StartTime:        startTime,
		Guests:           r.Guests,
		Notes:            r.Notes,
		PrivacyConsent:   r.PrivacyConsent,
		MarketingConsent: r.MarketingConsent,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success: true,
		Booking: &BookingResponse{
			ID:            resp.ID,
			CustomerName:  resp.CustomerName,
			CustomerEmail: resp.CustomerEmail,
			CustomerPhone: resp.CustomerPhone,
			Date:          resp.Date.Format(domain.DateFormat),
			MealType:      string(resp.MealType),
			Time:          resp.StartTime.String(),
			Guests:        resp.Guests,
			Notes:         resp.Notes,
			CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		},
	}
}
