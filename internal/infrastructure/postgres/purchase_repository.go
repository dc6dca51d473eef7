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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de persistencia para compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra nueva.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, product_id, quantity, unit_cost, timestamp)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.ProductID, purchase.Quantity, purchase.UnitCost, purchase.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	query := `
		SELECT id, product_id, quantity, unit_cost, timestamp
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ProductID, &p.Quantity, &p.UnitCost, &p.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// Update actualiza una compra existente (el timestamp original no cambia).
func (r *PurchaseRepo) Update(purchase *entity.Purchase) error {
	query := `
		UPDATE purchases SET product_id = $2, quantity = $3, unit_cost = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.ProductID, purchase.Quantity, purchase.UnitCost,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// List lista compras con paginación.
func (r *PurchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, product_id, quantity, unit_cost, timestamp
		FROM purchases ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Quantity, &p.UnitCost, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}

// Delete elimina una compra.
func (r *PurchaseRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

var _ repository.PurchaseSummaryRepository = (*PurchaseSummaryRepo)(nil)

// PurchaseSummaryRepo implementación del puerto PurchaseSummaryRepository sobre PostgreSQL.
type PurchaseSummaryRepo struct {
	q Querier
}

// NewPurchaseSummaryRepository construye el adaptador de snapshots de compras. Pasar pool o tx (Querier).
func NewPurchaseSummaryRepository(q Querier) *PurchaseSummaryRepo {
	return &PurchaseSummaryRepo{q: q}
}

// Create inserta un snapshot de compras.
func (r *PurchaseSummaryRepo) Create(s *entity.PurchaseSummary) error {
	query := `
		INSERT INTO purchase_summaries (purchase_summary_id, total_purchased, change_percentage, date)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		s.PurchaseSummaryID, s.TotalPurchased, s.ChangePercentage, s.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase summary: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot de compras.
func (r *PurchaseSummaryRepo) GetByID(id string) (*entity.PurchaseSummary, error) {
	query := `
		SELECT purchase_summary_id, total_purchased, change_percentage, date
		FROM purchase_summaries WHERE purchase_summary_id = $1`
	var s entity.PurchaseSummary
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.PurchaseSummaryID, &s.TotalPurchased, &s.ChangePercentage, &s.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase summary: %w", err)
	}
	return &s, nil
}

// Update actualiza un snapshot de compras.
func (r *PurchaseSummaryRepo) Update(s *entity.PurchaseSummary) error {
	query := `
		UPDATE purchase_summaries SET total_purchased = $2, change_percentage = $3, date = $4
		WHERE purchase_summary_id = $1`
	if _, err := r.q.Exec(context.Background(), query,
		s.PurchaseSummaryID, s.TotalPurchased, s.ChangePercentage, s.Date); err != nil {
		return fmt.Errorf("update purchase summary: %w", err)
	}
	return nil
}

// List lista snapshots de compras con paginación.
func (r *PurchaseSummaryRepo) List(limit, offset int) ([]*entity.PurchaseSummary, error) {
	query := `
		SELECT purchase_summary_id, total_purchased, change_percentage, date
		FROM purchase_summaries ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase summaries: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseSummary
	for rows.Next() {
		var s entity.PurchaseSummary
		if err := rows.Scan(&s.PurchaseSummaryID, &s.TotalPurchased, &s.ChangePercentage, &s.Date); err != nil {
			return nil, fmt.Errorf("scan purchase summary: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Delete elimina un snapshot de compras.
func (r *PurchaseSummaryRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM purchase_summaries WHERE purchase_summary_id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase summary: %w", err)
	}
	return nil
}
