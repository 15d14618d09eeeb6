package create_booking

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

// Request reservation submission
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time // civil date
	MealType      domain.MealType
	StartTime     types.TimeString
	Guests        int
	Notes         *string

	PrivacyConsent   bool
	MarketingConsent bool
}

// Response the accepted reservation
type Response struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time
	MealType      domain.MealType
	StartTime     types.TimeString
	Guests        int
	Notes         *string
	CreatedAt     time.Time
}
