package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/torridellacqua/TDA-ReservationService/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase availability lookup contract
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
