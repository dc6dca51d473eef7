package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create inserta una notificación; usuario inexistente -> ErrInvalidInput (FK).
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, message, created_at, is_read)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, n.ID, n.UserID, n.Message, n.CreatedAt, n.IsRead)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación.
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `SELECT id, user_id, message, created_at, is_read FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.UserID, &n.Message, &n.CreatedAt, &n.IsRead,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// Update actualiza mensaje y/o flag de lectura.
func (r *NotificationRepo) Update(n *entity.Notification) error {
	query := `UPDATE notifications SET message = $2, is_read = $3 WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, n.ID, n.Message, n.IsRead); err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	return nil
}

// List lista notificaciones con paginación (más recientes primero).
func (r *NotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, message, created_at, is_read
		FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.CreatedAt, &n.IsRead); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

// Delete elimina una notificación.
func (r *NotificationRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM notifications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
