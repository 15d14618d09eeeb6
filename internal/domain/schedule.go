package domain

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

// MealType one of the two service periods offered by the restaurant
type MealType string

const (
	MealLunch  MealType = "pranzo"
	MealDinner MealType = "cena"
)

// Valid returns true for a known meal type
func (m MealType) Valid() bool {
	return m == MealLunch || m == MealDinner
}

// DayService which meals are served on a given weekday
type DayService string

const (
	ServiceLunch  DayService = "pranzo"
	ServiceDinner DayService = "cena"
	ServiceBoth   DayService = "entrambi"
	ServiceClosed DayService = "chiuso"
)

// WeekSchedule fixed weekly service calendar, indexed by time.Weekday
// (Sunday = 0). Total over all seven days by construction.
type WeekSchedule [7]DayService

// MealSlots fixed ordered bookable time slots per meal type
type MealSlots map[MealType][]types.TimeString

// DefaultWeekSchedule the restaurant's weekly calendar:
// Sunday lunch, Monday dinner, Tuesday closed, Wednesday-Friday dinner,
// Saturday both services.
func DefaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		time.Sunday:    ServiceLunch,
		time.Monday:    ServiceDinner,
		time.Tuesday:   ServiceClosed,
		time.Wednesday: ServiceDinner,
		time.Thursday:  ServiceDinner,
		time.Friday:    ServiceDinner,
		time.Saturday:  ServiceBoth,
	}
}

// DefaultMealSlots bookable slots per meal, 30-minute cadence
func DefaultMealSlots() MealSlots {
	return MealSlots{
		MealLunch: {
			"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		},
		MealDinner: {
			"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00", "22:30",
		},
	}
}
