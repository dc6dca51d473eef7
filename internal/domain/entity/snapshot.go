package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLevel snapshot del stock de un producto.
type InventoryLevel struct {
	ID        string
	ProductID string
	Quantity  int
}

// ProfitMargin margen calculado de un producto en una fecha (snapshot).
type ProfitMargin struct {
	ID               string
	ProductID        string
	MarginPercentage decimal.Decimal
	Date             time.Time
}

// SalesTrend cantidad y valor vendidos de un producto en una fecha (snapshot).
type SalesTrend struct {
	ID            string
	ProductID     string
	Date          time.Time
	SalesQuantity int
	SalesValue    decimal.Decimal
}
