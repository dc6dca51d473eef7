package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta de un producto. El ID lo asigna el llamador (string único);
// TotalAmount viene calculado desde afuera, el sistema no lo deriva de
// Quantity × UnitPrice.
type Sale struct {
	SaleID      string
	ProductID   string
	Timestamp   time.Time // fecha de la venta
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
}

// SalesSummary snapshot agregado precalculado; no se recalcula en lectura.
type SalesSummary struct {
	SalesSummaryID   string
	TotalValue       decimal.Decimal
	ChangePercentage decimal.Decimal
	Date             time.Time
}
