package create_booking

import (
	"context"
	"fmt"

	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

// UseCase booking submission: the single gate every reservation must pass
// before a record is persisted. Both the weekly service calendar AND the
// admission switch must allow the request; neither alone is sufficient.
type UseCase struct {
	bookingRepo BookingRepository
	schedule    ScheduleEngine
	admission   AdmissionGate
	notifier    Notifier
	emails      NotificationEmailProvider
	logger      Logger
}

// NewUseCase creates the booking submission use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule ScheduleEngine,
	admission AdmissionGate,
	notifier Notifier,
	emails NotificationEmailProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		admission:   admission,
		notifier:    notifier,
		emails:      emails,
		logger:      logger,
	}
}

// Execute validates and persists a reservation submission.
//
// Order: input validation, then the admission switch, then the weekly
// calendar, then slot membership. Every rejection carries a dedicated
// sentinel so callers can show the customer a specific reason.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, meal=%s, time=%s, guests=%d",
		req.Date.Format(domain.DateFormat), req.MealType, req.StartTime, req.Guests)

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Admission gate (global switch + event cutoff)
	status := uc.admission.CheckStatus(ctx)
	if !status.IsOpen() {
		switch status.Reason {
		case domain.ReasonEventClosed:
			uc.logger.Warn("CreateBooking: rejected, bookings closed (event cutoff passed)")
			return nil, ErrBookingsClosed
		default:
			uc.logger.Warn("CreateBooking: rejected, bookings disabled by operator")
			return nil, ErrBookingsDisabled
		}
	}

	// 3. Weekly service calendar
	service := uc.schedule.DayService(req.Date)
	if service == domain.ServiceClosed {
		uc.logger.Warn("CreateBooking: rejected, restaurant closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrRestaurantClosed
	}
	if !uc.schedule.IsMealAvailable(req.Date, req.MealType) {
		uc.logger.Warn("CreateBooking: rejected, %s not served on %s (service=%s)",
			req.MealType, req.Date.Format(domain.DateFormat), service)
		return nil, ErrMealNotServed
	}

	// 4. Slot membership
	if !uc.schedule.IsBookableSlot(req.MealType, req.StartTime) {
		uc.logger.Warn("CreateBooking: rejected, %s is not a bookable %s slot", req.StartTime, req.MealType)
		return nil, ErrInvalidTimeSlot
	}

	// 5. Persist the record
	booking := &domain.Booking{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		BookingDate:      req.Date,
		MealType:         req.MealType,
		StartTime:        req.StartTime,
		Guests:           req.Guests,
		Notes:            req.Notes,
		PrivacyConsent:   req.PrivacyConsent,
		MarketingConsent: req.MarketingConsent,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	// 6. Notification emails, off the request path. The response does not
	// wait for delivery and delivery failures cannot fail the booking.
	restaurantEmail := uc.emails.NotificationEmail(ctx)
	go uc.notifier.SendBookingNotifications(created, restaurantEmail)

	return &Response{
		ID:            created.ID,
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
		CustomerPhone: created.CustomerPhone,
		Date:          created.BookingDate,
		MealType:      created.MealType,
		StartTime:     created.StartTime,
		Guests:        created.Guests,
		Notes:         created.Notes,
		CreatedAt:     created.CreatedAt,
	}, nil
}
