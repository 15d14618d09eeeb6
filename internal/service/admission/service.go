// Package admission implements the global booking intake switch.
//
// The gate is closed by default: intake opens only when an operator has
// stored an explicit "true" under bookings_enabled. Reads of the persisted
// state fail open, since an infrastructure fault in the settings layer must
// never block a public booking form, while toggle writes fail loud.
package admission

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	settingsRepo "github.com/torridellacqua/TDA-ReservationService/internal/infra/storage/settings"
	"github.com/torridellacqua/TDA-ReservationService/pkg/ptr"
)

// Service admission gate over the key-value settings store
type Service struct {
	settings SettingsRepository
	clock    Clock
	cutoff   time.Time // hard closing instant for the event; not operator-overridable
	logger   Logger
}

// NewService creates the admission gate. cutoff is the absolute instant after
// which intake reports closed with reason event_closed regardless of the
// persisted state.
func NewService(settings SettingsRepository, clock Clock, cutoff time.Time, logger Logger) *Service {
	return &Service{
		settings: settings,
		clock:    clock,
		cutoff:   cutoff,
		logger:   logger,
	}
}

// CheckStatus reports whether booking intake is currently open.
//
// The temporal cutoff is checked first and short-circuits before any store
// read. Otherwise both settings keys are read concurrently (no ordering
// between them) and combined. There is no error return: a failed read is
// reported as open with no message.
func (s *Service) CheckStatus(ctx context.Context) *domain.AdmissionStatus {
	if !s.clock.Now().Before(s.cutoff) {
		return &domain.AdmissionStatus{
			Enabled: false,
			Reason:  domain.ReasonEventClosed,
			Message: ptr.Ptr(domain.EventClosedMessage),
		}
	}

	var (
		wg                     sync.WaitGroup
		enabledVal, messageVal string
		enabledErr, messageErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		enabledVal, enabledErr = s.settings.Get(ctx, domain.SettingBookingsEnabled)
	}()
	go func() {
		defer wg.Done()
		messageVal, messageErr = s.settings.Get(ctx, domain.SettingClosedMessage)
	}()
	wg.Wait()

	// An absent key is normal state, not a store failure: a never-toggled
	// flag reads as disabled, a never-set message falls back to the default.
	if enabledErr != nil && !errors.Is(enabledErr, settingsRepo.ErrSettingNotFound) {
		s.logger.Error("CheckStatus: failed to read %s, failing open: %v", domain.SettingBookingsEnabled, enabledErr)
		return &domain.AdmissionStatus{Enabled: true, Reason: domain.ReasonNone}
	}
	if messageErr != nil && !errors.Is(messageErr, settingsRepo.ErrSettingNotFound) {
		s.logger.Error("CheckStatus: failed to read %s, failing open: %v", domain.SettingClosedMessage, messageErr)
		return &domain.AdmissionStatus{Enabled: true, Reason: domain.ReasonNone}
	}

	enabled := enabledVal == "true"
	if enabled {
		return &domain.AdmissionStatus{Enabled: true, Reason: domain.ReasonNone}
	}

	message := domain.DefaultClosedMessage
	if messageVal != "" {
		message = messageVal
	}

	return &domain.AdmissionStatus{
		Enabled: false,
		Reason:  domain.ReasonAdminDisabled,
		Message: &message,
	}
}

// Toggle switches booking intake on or off and optionally replaces the
// closure message shown to customers. Both writes are independent per-key
// upserts; the message key is only touched when a message was supplied.
// Write errors propagate to the caller.
func (s *Service) Toggle(ctx context.Context, enabled bool, message *string) (*domain.AdmissionState, error) {
	s.logger.Info("Toggle: setting bookings enabled=%t", enabled)

	if err := s.settings.Upsert(ctx, domain.SettingBookingsEnabled, strconv.FormatBool(enabled)); err != nil {
		s.logger.Error("Toggle: failed to upsert %s: %v", domain.SettingBookingsEnabled, err)
		return nil, fmt.Errorf("%w: Toggle - upsert enabled flag: %v", ErrToggleFailed, err)
	}

	state := &domain.AdmissionState{
		Enabled:       enabled,
		ClosedMessage: domain.DefaultClosedMessage,
	}

	if message != nil {
		if err := s.settings.Upsert(ctx, domain.SettingClosedMessage, *message); err != nil {
			s.logger.Error("Toggle: failed to upsert %s: %v", domain.SettingClosedMessage, err)
			return nil, fmt.Errorf("%w: Toggle - upsert closed message: %v", ErrToggleFailed, err)
		}
		state.ClosedMessage = *message
	}

	s.logger.Info("Toggle: committed enabled=%t", enabled)
	return state, nil
}
