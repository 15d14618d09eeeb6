package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	settingsRepo "github.com/torridellacqua/TDA-ReservationService/internal/infra/storage/settings"
)

// Service operator settings not covered by the admission gate.
// Currently a single knob: the address booking notifications are sent to.
type Service struct {
	settings     SettingsRepository
	defaultEmail string // configured fallback when no override is stored
	logger       Logger
}

// NewService creates the settings service
func NewService(settings SettingsRepository, defaultEmail string, logger Logger) *Service {
	return &Service{
		settings:     settings,
		defaultEmail: defaultEmail,
		logger:       logger,
	}
}

// NotificationEmail returns the stored notification address, falling back to
// the configured default when no override was ever saved or the read fails.
func (s *Service) NotificationEmail(ctx context.Context) string {
	value, err := s.settings.Get(ctx, domain.SettingNotificationEmail)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingNotFound) {
			s.logger.Warn("NotificationEmail: read failed, using configured default: %v", err)
		}
		return s.defaultEmail
	}
	if value == "" {
		return s.defaultEmail
	}
	return value
}

// UpdateNotificationEmail stores a notification address override
func (s *Service) UpdateNotificationEmail(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	if err := s.settings.Upsert(ctx, domain.SettingNotificationEmail, email); err != nil {
		s.logger.Error("UpdateNotificationEmail: upsert failed: %v", err)
		return fmt.Errorf("%w: UpdateNotificationEmail - upsert: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateNotificationEmail: notification email updated")
	return nil
}
