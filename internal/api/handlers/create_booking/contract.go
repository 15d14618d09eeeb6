package create_booking

import (
	"context"

	createBooking "github.com/torridellacqua/TDA-ReservationService/internal/usecase/create_booking"
)

// CreateBookingUseCase booking submission contract
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
