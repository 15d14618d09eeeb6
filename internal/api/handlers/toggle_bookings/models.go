package toggle_bookings

// ToggleRequest HTTP request model. Enabled is a pointer so an absent field
// can be told apart from an explicit false.
type ToggleRequest struct {
	Enabled *bool   `json:"enabled"`
	Message *string `json:"message,omitempty"`
}

// ToggleResponse HTTP response model, built from the values as committed
type ToggleResponse struct {
	Success bool   `json:"success"`
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}
