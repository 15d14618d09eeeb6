package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
	bookingsService "github.com/torridellacqua/TDA-ReservationService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "identificativo prenotazione non valido"
	msgBookingNotFound  = "prenotazione non trovata"
)

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Success bool `json:"success"`
}

// Handler operator endpoint removing a reservation record
type Handler struct {
	service BookingsService
	logger  Logger
}

// NewHandler creates the delete handler
func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, bookingsService.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/%d - not found", id)
			handlers.RespondNotFound(w, msgBookingNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/%d - failed: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/%d - booking deleted", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Success: true})
}
