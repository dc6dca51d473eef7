package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// NotificationUseCase casos de uso de notificaciones. Las de stock bajo
// las crea ProductUseCase; estas operaciones cubren el CRUD manual y el
// marcado de lectura.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	users         repository.UserRepository
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(notifications repository.NotificationRepository, users repository.UserRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, users: users}
}

// Create registra una notificación manual (is_read arranca en false).
func (uc *NotificationUseCase) Create(in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if in.UserID == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidInput
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	if err := uc.notifications.Create(n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// GetByID devuelve una notificación o ErrNotFound.
func (uc *NotificationUseCase) GetByID(id string) (*dto.NotificationResponse, error) {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	return toNotificationResponse(n), nil
}

// List devuelve una página de notificaciones.
func (uc *NotificationUseCase) List(page dto.PageRequest) ([]*dto.NotificationResponse, error) {
	page.DefaultPage()
	rows, err := uc.notifications.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, toNotificationResponse(n))
	}
	return out, nil
}

// Update actualización parcial de mensaje y/o is_read.
func (uc *NotificationUseCase) Update(id string, in dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if in.Message != nil {
		if *in.Message == "" {
			return nil, domain.ErrInvalidInput
		}
		n.Message = *in.Message
	}
	if in.IsRead != nil {
		n.IsRead = *in.IsRead
	}
	if err := uc.notifications.Update(n); err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// MarkRead marca la notificación como leída (idempotente).
func (uc *NotificationUseCase) MarkRead(id string) (*dto.NotificationResponse, error) {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if !n.IsRead {
		n.IsRead = true
		if err := uc.notifications.Update(n); err != nil {
			return nil, err
		}
	}
	return toNotificationResponse(n), nil
}

// Delete elimina una notificación.
func (uc *NotificationUseCase) Delete(id string) error {
	n, err := uc.notifications.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifications.Delete(id)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		IsRead:    n.IsRead,
	}
}
