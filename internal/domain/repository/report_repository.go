package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductSalesRow fila del reporte de ventas agrupado por nombre de producto.
type ProductSalesRow struct {
	ProductName string
	TotalSales  decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes.
type ReportRepository interface {
	// SalesByProduct suma totalAmount de las ventas agrupando por nombre de producto.
	// Devuelve cero filas si no hay ventas; el fallback lo decide el caso de uso.
	SalesByProduct(ctx context.Context) ([]ProductSalesRow, error)
}
