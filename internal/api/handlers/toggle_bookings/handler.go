package toggle_bookings

import (
	"net/http"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
	"github.com/torridellacqua/TDA-ReservationService/internal/domain"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgEnabledRequired    = "il campo enabled è obbligatorio"
	msgMessageTooLong     = "messaggio di chiusura troppo lungo"
)

// Handler operator endpoint that flips the booking intake switch
type Handler struct {
	gate   AdmissionGate
	logger Logger
}

// NewHandler creates the toggle handler
func NewHandler(gate AdmissionGate, logger Logger) *Handler {
	return &Handler{gate: gate, logger: logger}
}

// Handle POST /api/v1/bookings/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/status - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Enabled == nil {
		handlers.RespondBadRequest(w, msgEnabledRequired)
		return
	}
	if req.Message != nil && len(*req.Message) > domain.MaxClosedMsgLength {
		handlers.RespondBadRequest(w, msgMessageTooLong)
		return
	}

	state, err := h.gate.Toggle(r.Context(), *req.Enabled, req.Message)
	if err != nil {
		// writes fail loud: the operator must see the toggle did not land
		h.logger.Error("POST /bookings/status - toggle failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/status - bookings toggled: enabled=%t", state.Enabled)
	handlers.RespondJSON(w, http.StatusOK, ToggleResponse{
		Success: true,
		Enabled: state.Enabled,
		Message: state.ClosedMessage,
	})
}
