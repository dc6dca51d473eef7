package repository

import "github.com/tu-usuario/inventory-track/internal/domain/entity"

// NotificationRepository puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	Update(n *entity.Notification) error
	List(limit, offset int) ([]*entity.Notification, error)
	Delete(id string) error
}
