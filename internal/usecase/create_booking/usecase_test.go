package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/internal/schedule"
	"github.com/torridellacqua/TDA-ReservationService/pkg/ptr"
	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

// fakeBookingRepo records Create calls
type fakeBookingRepo struct {
	created   []*domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = int64(len(f.created) + 1)
	b.CreatedAt = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	f.created = append(f.created, b)
	return b, nil
}

// fakeAdmission fixed admission status
type fakeAdmission struct {
	status *domain.AdmissionStatus
}

func (f *fakeAdmission) CheckStatus(context.Context) *domain.AdmissionStatus {
	return f.status
}

// fakeNotifier records notification sends
type fakeNotifier struct {
	mu   sync.Mutex
	sent []*domain.Booking
	done chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{done: make(chan struct{}, 1)}
}

func (f *fakeNotifier) SendBookingNotifications(b *domain.Booking, _ string) {
	f.mu.Lock()
	f.sent = append(f.sent, b)
	f.mu.Unlock()
	f.done <- struct{}{}
}

type fakeEmails struct{}

func (fakeEmails) NotificationEmail(context.Context) string { return "info@example.it" }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openGate() *fakeAdmission {
	return &fakeAdmission{status: &domain.AdmissionStatus{Enabled: true}}
}

func closedGate(reason domain.AdmissionReason) *fakeAdmission {
	msg := "chiuso"
	return &fakeAdmission{status: &domain.AdmissionStatus{Enabled: false, Reason: reason, Message: &msg}}
}

func newTestUseCase(repo *fakeBookingRepo, gate *fakeAdmission, notifier *fakeNotifier) *UseCase {
	return NewUseCase(repo, schedule.NewDefaultEngine(), gate, notifier, fakeEmails{}, nopLogger{})
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2026-02-14") // Saturday, both services
	require.NoError(t, err)
	return &Request{
		CustomerName:   "Mario Rossi",
		CustomerEmail:  "mario.rossi@example.it",
		CustomerPhone:  "+39 333 1234567",
		Date:           date,
		MealType:       domain.MealLunch,
		StartTime:      "12:30",
		Guests:         2,
		PrivacyConsent: true,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	notifier := newFakeNotifier()
	uc := newTestUseCase(repo, openGate(), notifier)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Mario Rossi", resp.CustomerName)
	assert.Equal(t, domain.MealLunch, resp.MealType)
	require.Len(t, repo.created, 1)

	// notification is fired asynchronously
	select {
	case <-notifier.done:
	case <-time.After(time.Second):
		t.Fatal("notification was never sent")
	}
	assert.Equal(t, int64(1), notifier.sent[0].ID)
}

func TestExecute_BothGatesRequired(t *testing.T) {
	t.Run("closed weekday rejected even when admission open", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, openGate(), newFakeNotifier())

		req := validRequest(t)
		req.Date, _ = time.Parse(domain.DateFormat, "2026-02-17") // Tuesday, closed
		req.MealType = domain.MealDinner
		req.StartTime = "20:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrRestaurantClosed)
		assert.Empty(t, repo.created)
	})

	t.Run("admission closed rejects fully available weekday", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, closedGate(domain.ReasonAdminDisabled), newFakeNotifier())

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrBookingsDisabled)
		assert.Empty(t, repo.created)
	})

	t.Run("event cutoff maps to its own rejection", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		uc := newTestUseCase(repo, closedGate(domain.ReasonEventClosed), newFakeNotifier())

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrBookingsClosed)
		assert.Empty(t, repo.created)
	})
}

func TestExecute_WrongMeal(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, openGate(), newFakeNotifier())

	req := validRequest(t)
	req.Date, _ = time.Parse(domain.DateFormat, "2026-02-15") // Sunday, lunch only
	req.MealType = domain.MealDinner
	req.StartTime = "20:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMealNotServed)
	assert.Empty(t, repo.created)
}

func TestExecute_InvalidTimeSlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, openGate(), newFakeNotifier())

	tests := []struct {
		name string
		slot string
	}{
		{"off-grid time", "12:45"},
		{"dinner slot for lunch", "20:00"},
		{"outside service hours", "16:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			req.StartTime = types.TimeString(tt.slot)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidTimeSlot)
		})
	}
	assert.Empty(t, repo.created)
}

func TestExecute_InputValidation(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, openGate(), newFakeNotifier())

	t.Run("privacy consent required", func(t *testing.T) {
		req := validRequest(t)
		req.PrivacyConsent = false
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPrivacyConsentRequired)
	})

	t.Run("missing name", func(t *testing.T) {
		req := validRequest(t)
		req.CustomerName = "  "
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad email", func(t *testing.T) {
		req := validRequest(t)
		req.CustomerEmail = "not-an-email"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero guests", func(t *testing.T) {
		req := validRequest(t)
		req.Guests = 0
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown meal", func(t *testing.T) {
		req := validRequest(t)
		req.MealType = "merenda"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("notes too long", func(t *testing.T) {
		req := validRequest(t)
		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'a'
		}
		req.Notes = ptr.Ptr(string(long))
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	assert.Empty(t, repo.created)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("connection reset")}
	uc := newTestUseCase(repo, openGate(), newFakeNotifier())

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}
