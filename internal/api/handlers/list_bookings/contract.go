package list_bookings

import (
	"context"

	"github.com/torridellacqua/TDA-ReservationService/internal/service/bookings/models"
)

// BookingsService reservation records contract
type BookingsService interface {
	List(ctx context.Context) (*models.BookingListResponse, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
