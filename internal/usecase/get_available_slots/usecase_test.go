package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/internal/schedule"
	"github.com/torridellacqua/TDA-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func TestExecute_BothServicesDay(t *testing.T) {
	uc := NewUseCase(schedule.NewDefaultEngine(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2026-02-14")}) // Saturday
	require.NoError(t, err)

	assert.True(t, resp.Open)
	assert.Equal(t, domain.ServiceBoth, resp.DayService)
	assert.Equal(t, "sabato", resp.DayName)
	require.Len(t, resp.Meals, 2)

	for _, m := range resp.Meals {
		assert.True(t, m.Available, "meal %s", m.Meal)
		assert.NotEmpty(t, m.Slots, "meal %s", m.Meal)
	}
	assert.Equal(t, "12:00", resp.Meals[0].Slots[0])
	assert.Equal(t, "19:00", resp.Meals[1].Slots[0])
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := NewUseCase(schedule.NewDefaultEngine(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: mustDate(t, "2026-02-17")}) // Tuesday
	require.NoError(t, err)

	assert.False(t, resp.Open)
	assert.Equal(t, domain.ServiceClosed, resp.DayService)
	for _, m := range resp.Meals {
		assert.False(t, m.Available)
		assert.Empty(t, m.Slots)
	}
}

func TestExecute_SingleMealFilter(t *testing.T) {
	uc := NewUseCase(schedule.NewDefaultEngine(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: mustDate(t, "2026-02-15"), // Sunday, lunch only
		Meal: ptr.Ptr(domain.MealDinner),
	})
	require.NoError(t, err)

	require.Len(t, resp.Meals, 1)
	assert.Equal(t, domain.MealDinner, resp.Meals[0].Meal)
	assert.False(t, resp.Meals[0].Available)
	assert.Empty(t, resp.Meals[0].Slots)
	assert.True(t, resp.Open, "day is open even though dinner is not served")
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(schedule.NewDefaultEngine(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := domain.MealType("merenda")
	_, err = uc.Execute(context.Background(), &Request{Date: mustDate(t, "2026-02-14"), Meal: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
