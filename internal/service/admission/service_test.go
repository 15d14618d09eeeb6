package admission

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	settingsRepo "github.com/torridellacqua/TDA-ReservationService/internal/infra/storage/settings"
	"github.com/torridellacqua/TDA-ReservationService/pkg/ptr"
)

// fakeSettings in-memory settings store with injectable failures
type fakeSettings struct {
	mu     sync.Mutex
	values map[string]string

	getErr    error
	upsertErr error
	getCalls  int
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: make(map[string]string)}
}

func (f *fakeSettings) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return "", f.getErr
	}
	v, ok := f.values[key]
	if !ok {
		return "", settingsRepo.ErrSettingNotFound
	}
	return v, nil
}

func (f *fakeSettings) Upsert(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.values[key] = value
	return nil
}

// fakeClock fixed clock
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	cutoff     = time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC)
	beforeTime = time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
)

func newTestService(store *fakeSettings, now time.Time) *Service {
	return NewService(store, &fakeClock{now: now}, cutoff, nopLogger{})
}

func TestCheckStatus_ClosedByDefault(t *testing.T) {
	store := newFakeSettings()
	svc := newTestService(store, beforeTime)

	status := svc.CheckStatus(context.Background())

	// absent key is "not enabled", not an error
	assert.False(t, status.Enabled)
	assert.Equal(t, domain.ReasonAdminDisabled, status.Reason)
	require.NotNil(t, status.Message)
	assert.Equal(t, domain.DefaultClosedMessage, *status.Message)
}

func TestCheckStatus_EnabledAfterExplicitTrue(t *testing.T) {
	store := newFakeSettings()
	store.values[domain.SettingBookingsEnabled] = "true"
	svc := newTestService(store, beforeTime)

	status := svc.CheckStatus(context.Background())

	assert.True(t, status.Enabled)
	assert.Equal(t, domain.ReasonNone, status.Reason)
	assert.Nil(t, status.Message)
}

func TestCheckStatus_FailOpenOnReadError(t *testing.T) {
	store := newFakeSettings()
	store.getErr = errors.New("connection refused")
	svc := newTestService(store, beforeTime)

	status := svc.CheckStatus(context.Background())

	// a store fault never blocks intake
	assert.True(t, status.Enabled)
	assert.Equal(t, domain.ReasonNone, status.Reason)
	assert.Nil(t, status.Message)
}

func TestCheckStatus_CustomMessage(t *testing.T) {
	store := newFakeSettings()
	store.values[domain.SettingBookingsEnabled] = "false"
	store.values[domain.SettingClosedMessage] = "Chiuso per ferie"
	svc := newTestService(store, beforeTime)

	status := svc.CheckStatus(context.Background())

	assert.False(t, status.Enabled)
	assert.Equal(t, domain.ReasonAdminDisabled, status.Reason)
	require.NotNil(t, status.Message)
	assert.Equal(t, "Chiuso per ferie", *status.Message)
}

func TestCheckStatus_EventCutoff(t *testing.T) {
	store := newFakeSettings()
	store.values[domain.SettingBookingsEnabled] = "true"

	tests := []struct {
		name   string
		now    time.Time
		closed bool
	}{
		{"just before cutoff", cutoff.Add(-time.Minute), false},
		{"exactly at cutoff", cutoff, true},
		{"after cutoff", cutoff.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(store, tt.now)
			status := svc.CheckStatus(context.Background())

			if !tt.closed {
				assert.True(t, status.Enabled)
				return
			}

			// closed regardless of the persisted enabled value
			assert.False(t, status.Enabled)
			assert.Equal(t, domain.ReasonEventClosed, status.Reason)
			require.NotNil(t, status.Message)
			assert.Equal(t, domain.EventClosedMessage, *status.Message)
		})
	}
}

func TestCheckStatus_CutoffShortCircuitsStoreReads(t *testing.T) {
	store := newFakeSettings()
	svc := newTestService(store, cutoff.Add(time.Hour))

	svc.CheckStatus(context.Background())

	assert.Zero(t, store.getCalls, "cutoff must be decided before any store read")
}

func TestToggle_ThenCheckStatus(t *testing.T) {
	store := newFakeSettings()
	svc := newTestService(store, beforeTime)

	state, err := svc.Toggle(context.Background(), false, ptr.Ptr("Chiuso per ferie"))
	require.NoError(t, err)
	assert.False(t, state.Enabled)
	assert.Equal(t, "Chiuso per ferie", state.ClosedMessage)

	status := svc.CheckStatus(context.Background())
	assert.False(t, status.Enabled)
	assert.Equal(t, domain.ReasonAdminDisabled, status.Reason)
	require.NotNil(t, status.Message)
	assert.Equal(t, "Chiuso per ferie", *status.Message)
}

func TestToggle_EnableWithoutMessage(t *testing.T) {
	store := newFakeSettings()
	store.values[domain.SettingClosedMessage] = "Chiuso per ferie"
	svc := newTestService(store, beforeTime)

	state, err := svc.Toggle(context.Background(), true, nil)
	require.NoError(t, err)
	assert.True(t, state.Enabled)

	// nil message must not touch the stored one
	assert.Equal(t, "true", store.values[domain.SettingBookingsEnabled])
	assert.Equal(t, "Chiuso per ferie", store.values[domain.SettingClosedMessage])

	status := svc.CheckStatus(context.Background())
	assert.True(t, status.Enabled)
}

func TestToggle_WriteErrorPropagates(t *testing.T) {
	store := newFakeSettings()
	store.upsertErr = errors.New("disk full")
	svc := newTestService(store, beforeTime)

	state, err := svc.Toggle(context.Background(), true, nil)

	// writes fail loud, unlike reads
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrToggleFailed)
	assert.Nil(t, state)
}

func TestToggle_ConcurrentLastWriteWins(t *testing.T) {
	store := newFakeSettings()
	svc := newTestService(store, beforeTime)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(enabled bool) {
			defer wg.Done()
			_, err := svc.Toggle(context.Background(), enabled, nil)
			assert.NoError(t, err)
		}(i%2 == 0)
	}
	wg.Wait()

	// races resolve at the store's per-key granularity
	v := store.values[domain.SettingBookingsEnabled]
	assert.Contains(t, []string{"true", "false"}, v)
}
