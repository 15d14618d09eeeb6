package get_settings

import (
	"net/http"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
)

// SettingsResponse HTTP response model
type SettingsResponse struct {
	NotificationEmail string `json:"notificationEmail"`
}

// Handler operator endpoint reading the notification settings
type Handler struct {
	service SettingsService
	logger  Logger
}

// NewHandler creates the settings read handler
func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, SettingsResponse{
		NotificationEmail: h.service.NotificationEmail(r.Context()),
	})
}
