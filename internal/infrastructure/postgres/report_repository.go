package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes sobre PostgreSQL.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesByProduct agrupa ventas por nombre de producto y suma total_amount.
func (r *ReportRepo) SalesByProduct(ctx context.Context) ([]repository.ProductSalesRow, error) {
	query := `
		SELECT p.name, SUM(s.total_amount) AS total_sales
		FROM sales s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.name
		ORDER BY total_sales DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()

	var out []repository.ProductSalesRow
	for rows.Next() {
		var row repository.ProductSalesRow
		if err := rows.Scan(&row.ProductName, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
