package domain

// AdmissionReason why the admission gate reports closed
type AdmissionReason string

const (
	// ReasonNone intake is open
	ReasonNone AdmissionReason = ""

	// ReasonEventClosed the hard temporal cutoff has passed
	ReasonEventClosed AdmissionReason = "event_closed"

	// ReasonAdminDisabled an operator switched intake off
	ReasonAdminDisabled AdmissionReason = "admin_disabled"
)

// AdmissionState operator-controlled intake switch as persisted in settings.
// Absent a stored "true" value the system is closed: intake must be opened
// explicitly.
type AdmissionState struct {
	Enabled       bool
	ClosedMessage string
}

// AdmissionStatus result of an admission check as exposed to callers.
// Message is non-nil only when intake is closed.
type AdmissionStatus struct {
	Enabled bool
	Reason  AdmissionReason
	Message *string
}

// IsOpen returns true when booking intake is accepting submissions
func (s *AdmissionStatus) IsOpen() bool {
	return s.Enabled
}
