package list_bookings

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/internal/service/bookings/models"
)

// BookingResponse HTTP model of one reservation record
type BookingResponse struct {
	ID               int64   `json:"id"`
	CustomerName     string  `json:"customerName"`
	CustomerEmail    string  `json:"customerEmail"`
	CustomerPhone    string  `json:"customerPhone"`
	Date             string  `json:"date"`
	MealType         string  `json:"mealType"`
	Time             string  `json:"time"`
	Guests           int     `json:"guests"`
	Notes            *string `json:"notes,omitempty"`
	PrivacyConsent   bool    `json:"privacyConsent"`
	MarketingConsent bool    `json:"marketingConsent"`
	CreatedAt        string  `json:"createdAt"`
}

// ListBookingsResponse HTTP response model
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromServiceResponse converts the service list into the HTTP model
func FromServiceResponse(resp *models.BookingListResponse) *ListBookingsResponse {
	out := &ListBookingsResponse{
		Bookings: make([]BookingResponse, 0, len(resp.Bookings)),
		Total:    resp.Total,
	}

	for _, b := range resp.Bookings {
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:               b.ID,
			CustomerName:     b.CustomerName,
			CustomerEmail:    b.CustomerEmail,
			CustomerPhone:    b.CustomerPhone,
			Date:             b.BookingDate.Format(domain.DateFormat),
			MealType:         b.MealType,
			Time:             b.StartTime,
			Guests:           b.Guests,
			Notes:            b.Notes,
			PrivacyConsent:   b.PrivacyConsent,
			MarketingConsent: b.MarketingConsent,
			CreatedAt:        b.CreatedAt.Format(time.RFC3339),
		})
	}

	return out
}
