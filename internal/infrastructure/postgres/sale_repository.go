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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta. saleId repetido -> ErrDuplicate.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (sale_id, product_id, timestamp, quantity, unit_price, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.SaleID, sale.ProductID, sale.Timestamp, sale.Quantity, sale.UnitPrice, sale.TotalAmount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por su saleId.
func (r *SaleRepo) GetByID(saleID string) (*entity.Sale, error) {
	query := `
		SELECT sale_id, product_id, timestamp, quantity, unit_price, total_amount
		FROM sales WHERE sale_id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, saleID).Scan(
		&s.SaleID, &s.ProductID, &s.Timestamp, &s.Quantity, &s.UnitPrice, &s.TotalAmount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// Update actualiza una venta existente.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET product_id = $2, timestamp = $3, quantity = $4, unit_price = $5, total_amount = $6
		WHERE sale_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sale.SaleID, sale.ProductID, sale.Timestamp, sale.Quantity, sale.UnitPrice, sale.TotalAmount,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// List lista ventas con paginación.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT sale_id, product_id, timestamp, quantity, unit_price, total_amount
		FROM sales ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.SaleID, &s.ProductID, &s.Timestamp,
			&s.Quantity, &s.UnitPrice, &s.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}

// Delete elimina una venta.
func (r *SaleRepo) Delete(saleID string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

var _ repository.SalesSummaryRepository = (*SalesSummaryRepo)(nil)

// SalesSummaryRepo implementación del puerto SalesSummaryRepository sobre PostgreSQL.
type SalesSummaryRepo struct {
	q Querier
}

// NewSalesSummaryRepository construye el adaptador de snapshots de ventas. Pasar pool o tx (Querier).
func NewSalesSummaryRepository(q Querier) *SalesSummaryRepo {
	return &SalesSummaryRepo{q: q}
}

// Create inserta un snapshot de ventas.
func (r *SalesSummaryRepo) Create(s *entity.SalesSummary) error {
	query := `
		INSERT INTO sales_summaries (sales_summary_id, total_value, change_percentage, date)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		s.SalesSummaryID, s.TotalValue, s.ChangePercentage, s.Date,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales summary: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot de ventas.
func (r *SalesSummaryRepo) GetByID(id string) (*entity.SalesSummary, error) {
	query := `
		SELECT sales_summary_id, total_value, change_percentage, date
		FROM sales_summaries WHERE sales_summary_id = $1`
	var s entity.SalesSummary
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.SalesSummaryID, &s.TotalValue, &s.ChangePercentage, &s.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales summary: %w", err)
	}
	return &s, nil
}

// Update actualiza un snapshot de ventas.
func (r *SalesSummaryRepo) Update(s *entity.SalesSummary) error {
	query := `
		UPDATE sales_summaries SET total_value = $2, change_percentage = $3, date = $4
		WHERE sales_summary_id = $1`
	if _, err := r.q.Exec(context.Background(), query,
		s.SalesSummaryID, s.TotalValue, s.ChangePercentage, s.Date); err != nil {
		return fmt.Errorf("update sales summary: %w", err)
	}
	return nil
}

// List lista snapshots de ventas con paginación.
func (r *SalesSummaryRepo) List(limit, offset int) ([]*entity.SalesSummary, error) {
	query := `
		SELECT sales_summary_id, total_value, change_percentage, date
		FROM sales_summaries ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales summaries: %w", err)
	}
	defer rows.Close()

	var out []*entity.SalesSummary
	for rows.Next() {
		var s entity.SalesSummary
		if err := rows.Scan(&s.SalesSummaryID, &s.TotalValue, &s.ChangePercentage, &s.Date); err != nil {
			return nil, fmt.Errorf("scan sales summary: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Delete elimina un snapshot de ventas.
func (r *SalesSummaryRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM sales_summaries WHERE sales_summary_id = $1`, id); err != nil {
		return fmt.Errorf("delete sales summary: %w", err)
	}
	return nil
}
