package get_booking_status

import "github.com/torridellacqua/TDA-ReservationService/internal/domain"

// StatusResponse HTTP response model.
// Reason and message are present only while intake is closed.
type StatusResponse struct {
	Enabled bool    `json:"enabled"`
	Reason  *string `json:"reason,omitempty"`
	Message *string `json:"message,omitempty"`
}

// FromAdmissionStatus converts the gate status to the HTTP response
func FromAdmissionStatus(status *domain.AdmissionStatus) *StatusResponse {
	resp := &StatusResponse{
		Enabled: status.Enabled,
		Message: status.Message,
	}
	if status.Reason != domain.ReasonNone {
		reason := string(status.Reason)
		resp.Reason = &reason
	}
	return resp
}
