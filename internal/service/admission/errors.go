package admission

import "errors"

var (
	// ErrToggleFailed is returned when persisting the operator toggle fails.
	// Writes fail loud: a silently dropped toggle would surprise the operator.
	ErrToggleFailed = errors.New("admission: failed to persist toggle")
)
