package update_settings

import "context"

// SettingsService operator settings contract
type SettingsService interface {
	UpdateNotificationEmail(ctx context.Context, email string) error
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
