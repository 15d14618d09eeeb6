package bookings

import (
	"context"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// BookingRepository reservation records storage contract
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
