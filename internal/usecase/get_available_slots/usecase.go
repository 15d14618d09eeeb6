package get_available_slots

import (
	"context"
	"fmt"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// UseCase availability lookup used by the public calendar widget. It answers
// through the same schedule engine as submission validation, so what the
// calendar offers and what the server accepts can never diverge.
type UseCase struct {
	schedule ScheduleEngine
	logger   Logger
}

// NewUseCase creates the availability use case
func NewUseCase(schedule ScheduleEngine, logger Logger) *UseCase {
	return &UseCase{
		schedule: schedule,
		logger:   logger,
	}
}

// Execute reports the day's service and the bookable slots per meal
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Meal != nil && !req.Meal.Valid() {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrInvalidInput, *req.Meal)
	}

	meals := []domain.MealType{domain.MealLunch, domain.MealDinner}
	if req.Meal != nil {
		meals = []domain.MealType{*req.Meal}
	}

	resp := &Response{
		Date:       req.Date,
		DayName:    uc.schedule.DayName(req.Date),
		DayService: uc.schedule.DayService(req.Date),
		Open:       uc.schedule.DayService(req.Date) != domain.ServiceClosed,
		Meals:      make([]MealAvailability, 0, len(meals)),
	}

	for _, meal := range meals {
		availability := MealAvailability{
			Meal:      meal,
			Available: uc.schedule.IsMealAvailable(req.Date, meal),
			Slots:     []string{},
		}
		if availability.Available {
			for _, slot := range uc.schedule.TimeSlots(meal) {
				availability.Slots = append(availability.Slots, slot.String())
			}
		}
		resp.Meals = append(resp.Meals, availability)
	}

	return resp, nil
}
