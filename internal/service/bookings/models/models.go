package models

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// BookingResponse service-level view of a reservation record
type BookingResponse struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   time.Time
	MealType      string
	StartTime     string
	Guests        int
	Notes         *string

	PrivacyConsent   bool
	MarketingConsent bool

	CreatedAt time.Time
}

// BookingListResponse list of reservation records
type BookingListResponse struct {
	Bookings []*BookingResponse
	Total    int
}

// FromDomainBooking converts a domain booking into the service response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		BookingDate:      b.BookingDate,
		MealType:         string(b.MealType),
		StartTime:        b.StartTime.String(),
		Guests:           b.Guests,
		Notes:            b.Notes,
		PrivacyConsent:   b.PrivacyConsent,
		MarketingConsent: b.MarketingConsent,
		CreatedAt:        b.CreatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
