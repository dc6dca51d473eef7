package entity

import "time"

// Notification aviso dirigido a un usuario (cae en cascada al borrarlo).
// IsRead arranca en false y se marca vía la operación de lectura.
type Notification struct {
	ID        string
	UserID    string
	Message   string
	CreatedAt time.Time
	IsRead    bool
}
