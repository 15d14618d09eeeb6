package create_booking

import (
	"context"
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

// BookingRepository reservation records storage contract
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ScheduleEngine weekly service calendar contract.
// The single source of truth for date/meal availability.
type ScheduleEngine interface {
	DayService(date time.Time) domain.DayService
	IsMealAvailable(date time.Time, meal domain.MealType) bool
	IsBookableSlot(meal domain.MealType, t types.TimeString) bool
}

// AdmissionGate global intake switch contract
type AdmissionGate interface {
	CheckStatus(ctx context.Context) *domain.AdmissionStatus
}

// Notifier booking notification contract
type Notifier interface {
	SendBookingNotifications(booking *domain.Booking, restaurantEmail string)
}

// NotificationEmailProvider supplies the restaurant notification address
type NotificationEmailProvider interface {
	NotificationEmail(ctx context.Context) string
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
