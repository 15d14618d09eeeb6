package domain

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

// Booking a confirmed reservation request as persisted
type Booking struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	BookingDate   time.Time // civil date, no time-of-day component
	MealType      MealType
	StartTime     types.TimeString
	Guests        int
	Notes         *string

	PrivacyConsent   bool
	MarketingConsent bool

	CreatedAt time.Time
}

// SettingsEntry one row of the generic key-value settings table
type SettingsEntry struct {
	Key   string
	Value string
}
