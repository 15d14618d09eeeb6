package get_available_slots

import (
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	"github.com/torridellacqua/TDA-ReservationService/pkg/types"
)

// ScheduleEngine weekly service calendar contract
type ScheduleEngine interface {
	DayService(date time.Time) domain.DayService
	IsMealAvailable(date time.Time, meal domain.MealType) bool
	TimeSlots(meal domain.MealType) []types.TimeString
	DayName(date time.Time) string
}

// Logger logging contract
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
