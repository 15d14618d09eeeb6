// Package schedule implements the fixed weekly service calendar and the
// bookable-slot tables. It is the single source of truth for "can this meal
// be booked on this date": both the server-side validation and the calendar
// rendering endpoint go through it, so the two can never disagree.
//
// The engine is pure and stateless; it is safe for unbounded concurrent use.
package schedule

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

// dayNames Italian weekday labels, indexed by time.Weekday (Sunday = 0)
var dayNames = [7]string{
	"domenica",
	"lunedì",
	"martedì",
	"mercoledì",
	"giovedì",
	"venerdì",
	"sabato",
}

// Engine answers availability questions against an immutable weekly calendar
// and per-meal slot tables injected at construction
type Engine struct {
	week  domain.WeekSchedule
	slots domain.MealSlots
}

// NewEngine creates an engine over the given tables
func NewEngine(week domain.WeekSchedule, slots domain.MealSlots) *Engine {
	return &Engine{week: week, slots: slots}
}

// NewDefaultEngine creates an engine over the restaurant's compiled-in tables
func NewDefaultEngine() *Engine {
	return NewEngine(domain.DefaultWeekSchedule(), domain.DefaultMealSlots())
}

// DayService returns the weekly policy for the date's weekday.
// The date is treated as a civil date: its weekday is read directly, with no
// timezone conversion, so a date parsed from "YYYY-MM-DD" can never drift
// across a day boundary.
func (e *Engine) DayService(date time.Time) domain.DayService {
	return e.week[date.Weekday()]
}

// IsDayOpen returns true if at least one meal is served on the date
func (e *Engine) IsDayOpen(date time.Time) bool {
	return e.DayService(date) != domain.ServiceClosed
}

// IsMealAvailable returns true if the requested meal is served on the date
func (e *Engine) IsMealAvailable(date time.Time, meal domain.MealType) bool {
	service := e.DayService(date)
	if service == domain.ServiceClosed {
		return false
	}
	if service == domain.ServiceBoth {
		return true
	}
	return string(service) == string(meal)
}

// TimeSlots returns the fixed ordered bookable slots for the meal.
// The returned slice is a copy; callers may not mutate the tables.
func (e *Engine) TimeSlots(meal domain.MealType) []types.TimeString {
	slots := e.slots[meal]
	out := make([]types.TimeString, len(slots))
	copy(out, slots)
	return out
}

// IsBookableSlot returns true if t is one of the meal's bookable slots
func (e *Engine) IsBookableSlot(meal domain.MealType, t types.TimeString) bool {
	for _, slot := range e.slots[meal] {
		if slot == t {
			return true
		}
	}
	return false
}

// DayName returns the localized weekday label for the date
func (e *Engine) DayName(date time.Time) string {
	return dayNames[date.Weekday()]
}
