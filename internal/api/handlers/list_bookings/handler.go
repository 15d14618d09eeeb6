package list_bookings

import (
	"net/http"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
)

// Handler operator endpoint listing all reservation records
type Handler struct {
	service BookingsService
	logger  Logger
}

// NewHandler creates the list handler
func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings - failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
