package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func TestDayService_WeeklyCalendar(t *testing.T) {
	engine := NewDefaultEngine()

	tests := []struct {
		date    string
		weekday time.Weekday
		want    domain.DayService
	}{
		{"2026-02-15", time.Sunday, domain.ServiceLunch},
		{"2026-02-16", time.Monday, domain.ServiceDinner},
		{"2026-02-17", time.Tuesday, domain.ServiceClosed},
		{"2026-02-18", time.Wednesday, domain.ServiceDinner},
		{"2026-02-19", time.Thursday, domain.ServiceDinner},
		{"2026-02-20", time.Friday, domain.ServiceDinner},
		{"2026-02-14", time.Saturday, domain.ServiceBoth},
	}

	for _, tt := range tests {
		date := mustDate(t, tt.date)
		require.Equal(t, tt.weekday, date.Weekday(), "fixture weekday for %s", tt.date)
		assert.Equal(t, tt.want, engine.DayService(date), "day service for %s", tt.date)
	}
}

func TestIsMealAvailable(t *testing.T) {
	engine := NewDefaultEngine()

	saturday := mustDate(t, "2026-02-14") // entrambi
	sunday := mustDate(t, "2026-02-15")   // solo pranzo
	monday := mustDate(t, "2026-02-16")   // solo cena
	tuesday := mustDate(t, "2026-02-17")  // chiuso

	// closed day: both meals unavailable
	assert.False(t, engine.IsMealAvailable(tuesday, domain.MealLunch))
	assert.False(t, engine.IsMealAvailable(tuesday, domain.MealDinner))
	assert.False(t, engine.IsDayOpen(tuesday))

	// "both" day: both meals available
	assert.True(t, engine.IsMealAvailable(saturday, domain.MealLunch))
	assert.True(t, engine.IsMealAvailable(saturday, domain.MealDinner))

	// single-service days: only the matching meal
	assert.True(t, engine.IsMealAvailable(sunday, domain.MealLunch))
	assert.False(t, engine.IsMealAvailable(sunday, domain.MealDinner))
	assert.False(t, engine.IsMealAvailable(monday, domain.MealLunch))
	assert.True(t, engine.IsMealAvailable(monday, domain.MealDinner))
}

func TestIsMealAvailable_AllClosedDaysRejectBothMeals(t *testing.T) {
	engine := NewDefaultEngine()

	// every Tuesday over a few weeks
	for _, d := range []string{"2026-02-03", "2026-02-10", "2026-02-17", "2026-02-24"} {
		date := mustDate(t, d)
		require.Equal(t, domain.ServiceClosed, engine.DayService(date))
		assert.False(t, engine.IsMealAvailable(date, domain.MealLunch), d)
		assert.False(t, engine.IsMealAvailable(date, domain.MealDinner), d)
	}
}

func TestTimeSlots_OrderedAndStable(t *testing.T) {
	engine := NewDefaultEngine()

	for _, meal := range []domain.MealType{domain.MealLunch, domain.MealDinner} {
		slots := engine.TimeSlots(meal)
		require.NotEmpty(t, slots, "slots for %s", meal)

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].IsBefore(slots[i]),
				"%s slots must be strictly increasing: %s before %s", meal, slots[i-1], slots[i])
		}

		// pure lookup: same sequence on every call
		assert.Equal(t, slots, engine.TimeSlots(meal))
	}
}

func TestTimeSlots_ReturnsCopy(t *testing.T) {
	engine := NewDefaultEngine()

	slots := engine.TimeSlots(domain.MealLunch)
	slots[0] = "00:00"

	assert.Equal(t, "12:00", engine.TimeSlots(domain.MealLunch)[0].String())
}

func TestIsBookableSlot(t *testing.T) {
	engine := NewDefaultEngine()

	assert.True(t, engine.IsBookableSlot(domain.MealLunch, "12:30"))
	assert.True(t, engine.IsBookableSlot(domain.MealDinner, "22:30"))

	assert.False(t, engine.IsBookableSlot(domain.MealLunch, "19:00"), "dinner slot is not bookable for lunch")
	assert.False(t, engine.IsBookableSlot(domain.MealDinner, "18:45"), "off-grid time")
	assert.False(t, engine.IsBookableSlot(domain.MealDinner, ""))
}

func TestDayName(t *testing.T) {
	engine := NewDefaultEngine()

	assert.Equal(t, "sabato", engine.DayName(mustDate(t, "2026-02-14")))
	assert.Equal(t, "martedì", engine.DayName(mustDate(t, "2026-02-17")))
	assert.Equal(t, "domenica", engine.DayName(mustDate(t, "2026-02-15")))
}

func TestNewEngine_AlternateCalendar(t *testing.T) {
	// tables are injected, not ambient globals: tests can substitute them
	week := domain.WeekSchedule{}
	for d := range week {
		week[d] = domain.ServiceBoth
	}
	week[time.Monday] = domain.ServiceClosed

	engine := NewEngine(week, domain.MealSlots{
		domain.MealLunch: {"11:00"},
	})

	monday := mustDate(t, "2026-02-16")
	sunday := mustDate(t, "2026-02-15")

	assert.False(t, engine.IsDayOpen(monday))
	assert.True(t, engine.IsMealAvailable(sunday, domain.MealDinner))
	assert.Equal(t, []string{"11:00"}, []string{engine.TimeSlots(domain.MealLunch)[0].String()})
	assert.Empty(t, engine.TimeSlots(domain.MealDinner))
}
