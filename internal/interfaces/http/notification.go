package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Ammar30113/finpulse/internal/domain/notification"
	"github.com/Ammar30113/finpulse/internal/shared/middleware"
)

type NotificationHandler struct {
	notifications *notification.Service
}

func NewNotificationHandler(notifications *notification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type RegisterDeviceRequest struct {
	Token      string `json:"token"`
	DeviceType string `json:"deviceType"` // "ios" or "android"
}

type UnregisterDeviceRequest struct {
	Token string `json:"token"`
}

// HandleDevices registers a device token (POST) or deactivates one (DELETE)
func (h *NotificationHandler) HandleDevices(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.UserIDKey).(int64)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.handleRegisterDevice(w, r, userID)
	case http.MethodDelete:
		h.handleUnregisterDevice(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *NotificationHandler) handleRegisterDevice(w http.ResponseWriter, r *http.Request, userID int64) {
	var req RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.notifications.RegisterDevice(r.Context(), notification.CreateDeviceTokenParams{
		UserID:     userID,
		Token:      req.Token,
		DeviceType: req.DeviceType,
	})
	if err != nil {
		if errors.Is(err, notification.ErrInvalidToken) || errors.Is(err, notification.ErrInvalidDeviceType) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error registering device for user %d: %v", userID, err)
		http.Error(w, "Failed to register device", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(token)
}

func (h *NotificationHandler) handleUnregisterDevice(w http.ResponseWriter, r *http.Request) {
	var req UnregisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.notifications.UnregisterDevice(r.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidToken):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, notification.ErrDeviceTokenNotFound):
			http.Error(w, "Device token not found", http.StatusNotFound)
		default:
			log.Printf("Error unregistering device: %v", err)
			http.Error(w, "Failed to unregister device", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
