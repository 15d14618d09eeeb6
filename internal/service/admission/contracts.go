package admission

import (
	"context"
	"time"
)

// SettingsRepository settings store contract consumed by the gate
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}

// Clock supplies the current instant (mockable in tests)
type Clock interface {
	Now() time.Time
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealClock wall clock for production
type RealClock struct{}

// Now returns the current time
func (RealClock) Now() time.Time {
	return time.Now()
}
