package http

import (
	"net/http"

	"festaloc-backend/internal/domain"
	"festaloc-backend/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.notifications.Derive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if alerts == nil {
		alerts = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, alerts)
}
