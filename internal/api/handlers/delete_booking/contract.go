package delete_booking

import "context"

// BookingsService reservation records contract
type BookingsService interface {
	Delete(ctx context.Context, id int64) error
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
