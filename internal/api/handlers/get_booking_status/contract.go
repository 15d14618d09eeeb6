package get_booking_status

import (
	"context"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// AdmissionGate admission status contract
type AdmissionGate interface {
	CheckStatus(ctx context.Context) *domain.AdmissionStatus
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
