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

var _ repository.InventoryLevelRepository = (*InventoryLevelRepo)(nil)

// InventoryLevelRepo implementación del puerto InventoryLevelRepository sobre PostgreSQL.
type InventoryLevelRepo struct {
	q Querier
}

// NewInventoryLevelRepository construye el adaptador de snapshots de stock. Pasar pool o tx (Querier).
func NewInventoryLevelRepository(q Querier) *InventoryLevelRepo {
	return &InventoryLevelRepo{q: q}
}

// Create inserta un snapshot de stock; producto inexistente -> ErrInvalidInput (FK).
func (r *InventoryLevelRepo) Create(l *entity.InventoryLevel) error {
	query := `INSERT INTO inventory_levels (id, product_id, quantity) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.ProductID, l.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert inventory level: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot de stock.
func (r *InventoryLevelRepo) GetByID(id string) (*entity.InventoryLevel, error) {
	query := `SELECT id, product_id, quantity FROM inventory_levels WHERE id = $1`
	var l entity.InventoryLevel
	err := r.q.QueryRow(context.Background(), query, id).Scan(&l.ID, &l.ProductID, &l.Quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory level: %w", err)
	}
	return &l, nil
}

// Update actualiza un snapshot de stock.
func (r *InventoryLevelRepo) Update(l *entity.InventoryLevel) error {
	query := `UPDATE inventory_levels SET product_id = $2, quantity = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.ProductID, l.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update inventory level: %w", err)
	}
	return nil
}

// List lista snapshots de stock con paginación.
func (r *InventoryLevelRepo) List(limit, offset int) ([]*entity.InventoryLevel, error) {
	query := `SELECT id, product_id, quantity FROM inventory_levels ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory levels: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryLevel
	for rows.Next() {
		var l entity.InventoryLevel
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan inventory level: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}

// Delete elimina un snapshot de stock.
func (r *InventoryLevelRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory_levels WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete inventory level: %w", err)
	}
	return nil
}

var _ repository.ProfitMarginRepository = (*ProfitMarginRepo)(nil)

// ProfitMarginRepo implementación del puerto ProfitMarginRepository sobre PostgreSQL.
type ProfitMarginRepo struct {
	q Querier
}

// NewProfitMarginRepository construye el adaptador de snapshots de margen. Pasar pool o tx (Querier).
func NewProfitMarginRepository(q Querier) *ProfitMarginRepo {
	return &ProfitMarginRepo{q: q}
}

// Create inserta un snapshot de margen.
func (r *ProfitMarginRepo) Create(m *entity.ProfitMargin) error {
	query := `INSERT INTO profit_margins (id, product_id, margin_percentage, date) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.ProductID, m.MarginPercentage, m.Date)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert profit margin: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot de margen.
func (r *ProfitMarginRepo) GetByID(id string) (*entity.ProfitMargin, error) {
	query := `SELECT id, product_id, margin_percentage, date FROM profit_margins WHERE id = $1`
	var m entity.ProfitMargin
	err := r.q.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.ProductID, &m.MarginPercentage, &m.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profit margin: %w", err)
	}
	return &m, nil
}

// Update actualiza un snapshot de margen.
func (r *ProfitMarginRepo) Update(m *entity.ProfitMargin) error {
	query := `UPDATE profit_margins SET product_id = $2, margin_percentage = $3, date = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.ProductID, m.MarginPercentage, m.Date)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update profit margin: %w", err)
	}
	return nil
}

// List lista snapshots de margen con paginación.
func (r *ProfitMarginRepo) List(limit, offset int) ([]*entity.ProfitMargin, error) {
	query := `SELECT id, product_id, margin_percentage, date FROM profit_margins ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profit margins: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProfitMargin
	for rows.Next() {
		var m entity.ProfitMargin
		if err := rows.Scan(&m.ID, &m.ProductID, &m.MarginPercentage, &m.Date); err != nil {
			return nil, fmt.Errorf("scan profit margin: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Delete elimina un snapshot de margen.
func (r *ProfitMarginRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM profit_margins WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete profit margin: %w", err)
	}
	return nil
}

var _ repository.SalesTrendRepository = (*SalesTrendRepo)(nil)

// SalesTrendRepo implementación del puerto SalesTrendRepository sobre PostgreSQL.
type SalesTrendRepo struct {
	q Querier
}

// NewSalesTrendRepository construye el adaptador de snapshots de tendencia. Pasar pool o tx (Querier).
func NewSalesTrendRepository(q Querier) *SalesTrendRepo {
	return &SalesTrendRepo{q: q}
}

// Create inserta un snapshot de tendencia.
func (r *SalesTrendRepo) Create(t *entity.SalesTrend) error {
	query := `
		INSERT INTO sales_trends (id, product_id, date, sales_quantity, sales_value)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.ProductID, t.Date, t.SalesQuantity, t.SalesValue)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert sales trend: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot de tendencia.
func (r *SalesTrendRepo) GetByID(id string) (*entity.SalesTrend, error) {
	query := `SELECT id, product_id, date, sales_quantity, sales_value FROM sales_trends WHERE id = $1`
	var t entity.SalesTrend
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductID, &t.Date, &t.SalesQuantity, &t.SalesValue,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales trend: %w", err)
	}
	return &t, nil
}

// Update actualiza un snapshot de tendencia.
func (r *SalesTrendRepo) Update(t *entity.SalesTrend) error {
	query := `
		UPDATE sales_trends SET product_id = $2, date = $3, sales_quantity = $4, sales_value = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.ProductID, t.Date, t.SalesQuantity, t.SalesValue)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update sales trend: %w", err)
	}
	return nil
}

// List lista snapshots de tendencia con paginación.
func (r *SalesTrendRepo) List(limit, offset int) ([]*entity.SalesTrend, error) {
	query := `
		SELECT id, product_id, date, sales_quantity, sales_value
		FROM sales_trends ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales trends: %w", err)
	}
	defer rows.Close()

	var out []*entity.SalesTrend
	for rows.Next() {
		var t entity.SalesTrend
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Date, &t.SalesQuantity, &t.SalesValue); err != nil {
			return nil, fmt.Errorf("scan sales trend: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Delete elimina un snapshot de tendencia.
func (r *SalesTrendRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM sales_trends WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sales trend: %w", err)
	}
	return nil
}
