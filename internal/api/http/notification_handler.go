package http

import (
	"net/http"

	"agrimarket-backend/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)
	items, total, err := h.notifications.List(r.Context(), UserID(r), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondPage(w, items, total)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.notifications.MarkAsRead(r.Context(), UserID(r), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
