package update_settings

import (
	"errors"
	"net/http"

	"github.com/torridellacqua/TDA-ReservationService/internal/api/handlers"
	settingsService "github.com/torridellacqua/TDA-ReservationService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "corpo della richiesta non valido"
	msgInvalidEmail       = "indirizzo email non valido"
)

// UpdateSettingsRequest HTTP request model. The pointer distinguishes an
// absent field from an explicit empty string (which clears the override).
type UpdateSettingsRequest struct {
	NotificationEmail *string `json:"notificationEmail"`
}

// UpdateSettingsResponse HTTP response model
type UpdateSettingsResponse struct {
	Success bool `json:"success"`
}

// Handler operator endpoint updating the notification settings
type Handler struct {
	service SettingsService
	logger  Logger
}

// NewHandler creates the settings update handler
func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.NotificationEmail != nil {
		if err := h.service.UpdateNotificationEmail(r.Context(), *req.NotificationEmail); err != nil {
			if errors.Is(err, settingsService.ErrInvalidInput) {
				handlers.RespondBadRequest(w, msgInvalidEmail)
				return
			}
			h.logger.Error("PUT /settings - failed to update notification email: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, UpdateSettingsResponse{Success: true})
}
