package mailer

import "errors"

var (
	// ErrNotConfigured is returned when SMTP delivery is not configured
	ErrNotConfigured = errors.New("mailer: smtp not configured")

	// ErrRenderTemplate is returned when rendering an email body fails
	ErrRenderTemplate = errors.New("mailer: failed to render template")

	// ErrSendFailed is returned when the SMTP submission fails
	ErrSendFailed = errors.New("mailer: failed to send email")
)
