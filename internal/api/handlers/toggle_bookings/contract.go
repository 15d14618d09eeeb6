package toggle_bookings

import (
	"context"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// AdmissionGate admission toggle contract
type AdmissionGate interface {
	Toggle(ctx context.Context, enabled bool, message *string) (*domain.AdmissionState, error)
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
