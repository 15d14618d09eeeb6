package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
	getAvailableSlots "github.com/torridellacqua/TDA-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgDateRequired = "parametro date obbligatorio, atteso YYYY-MM-DD"
	msgInvalidDate  = "formato data non valido, atteso YYYY-MM-DD"
	msgInvalidMeal  = "servizio non valido, atteso pranzo o cena"
)

// Handler public availability endpoint consumed by the calendar widget
type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

// NewHandler creates the availability handler
func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD[&meal=pranzo|cena]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateParam)
	if err != nil {
		h.logger.Warn("GET /availability - invalid date %q: %v", dateParam, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{Date: date}
	if mealParam := r.URL.Query().Get("meal"); mealParam != "" {
		meal := domain.MealType(mealParam)
		req.Meal = &meal
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidMeal)
			return
		}
		h.logger.Error("GET /availability - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
