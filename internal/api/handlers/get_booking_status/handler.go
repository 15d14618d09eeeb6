package get_booking_status

import (
	"net/http"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
)

// Handler public admission status endpoint, read by the booking form on
// every page load to decide whether to show the form or the closure message
type Handler struct {
	gate   AdmissionGate
	logger Logger
}

// NewHandler creates the status handler
func NewHandler(gate AdmissionGate, logger Logger) *Handler {
	return &Handler{gate: gate, logger: logger}
}

// Handle GET /api/v1/bookings/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := h.gate.CheckStatus(r.Context())

	// CheckStatus never fails: store faults are already folded into an
	// open status, so this endpoint is always 200.
	handlers.RespondJSON(w, http.StatusOK, FromAdmissionStatus(status))
}
