package dto

import "time"

// CreateNotificationRequest entrada para crear una notificación manual.
type CreateNotificationRequest struct {
	UserID  string `json:"user" validate:"required,uuid"`
	Message string `json:"message" validate:"required"`
}

// UpdateNotificationRequest actualización parcial de una notificación.
type UpdateNotificationRequest struct {
	Message *string `json:"message"`
	IsRead  *bool   `json:"is_read"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}
