package get_settings

import "context"

// SettingsService operator settings contract
type SettingsService interface {
	NotificationEmail(ctx context.Context) string
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
