package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase compra de stock de un producto. Timestamp lo estampa el servidor.
type Purchase struct {
	ID        string
	ProductID string
	Quantity  int
	UnitCost  decimal.Decimal
	Timestamp time.Time
}

// PurchaseSummary snapshot agregado precalculado de compras.
type PurchaseSummary struct {
	PurchaseSummaryID string
	TotalPurchased    decimal.Decimal
	ChangePercentage  decimal.Decimal
	Date              time.Time
}
