package create_booking

import (
	"errors"
	"net/http"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
	createBooking "github.com/torridellacqua/TDA-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidDateOrTime  = "data o orario non validi, attesi YYYY-MM-DD e HH:MM"
	msgInvalidInput       = "dati della prenotazione non validi"
	msgPrivacyRequired    = "è necessario accettare l'informativa sulla privacy"
	msgBookingsClosed     = "le prenotazioni sono chiuse"
	msgBookingsDisabled   = "le prenotazioni sono momentaneamente sospese"
	msgRestaurantClosed   = "il ristorante è chiuso nella data selezionata"
	msgMealNotServed      = "il servizio scelto non è disponibile nella data selezionata"
	msgInvalidTimeSlot    = "l'orario scelto non è prenotabile"
)

// Handler public booking submission endpoint
type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

// NewHandler creates the submission handler
func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPrivacyConsentRequired):
			handlers.RespondBadRequest(w, msgPrivacyRequired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrBookingsClosed):
			h.logger.Warn("POST /bookings - rejected, bookings closed (event cutoff)")
			handlers.RespondError(w, http.StatusForbidden, msgBookingsClosed)

		case errors.Is(err, createBooking.ErrBookingsDisabled):
			h.logger.Warn("POST /bookings - rejected, bookings disabled by operator")
			handlers.RespondError(w, http.StatusForbidden, msgBookingsDisabled)

		case errors.Is(err, createBooking.ErrRestaurantClosed):
			h.logger.Warn("POST /bookings - rejected, restaurant closed: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgRestaurantClosed)

		case errors.Is(err, createBooking.ErrMealNotServed):
			h.logger.Warn("POST /bookings - rejected, meal not served: date=%s, meal=%s", req.Date, req.MealType)
			handlers.RespondBadRequest(w, msgMealNotServed)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - rejected, invalid slot: meal=%s, time=%s", req.MealType, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("POST /bookings - failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: id=%d, date=%s, meal=%s, time=%s",
		result.ID, req.Date, req.MealType, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
