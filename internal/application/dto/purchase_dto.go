package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para registrar una compra. El timestamp
// lo estampa el servidor.
type CreatePurchaseRequest struct {
	ProductID string          `json:"product" validate:"required,uuid"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// UpdatePurchaseRequest actualización parcial de una compra.
type UpdatePurchaseRequest struct {
	ProductID *string          `json:"product" validate:"omitempty,uuid"`
	Quantity  *int             `json:"quantity"`
	UnitCost  *decimal.Decimal `json:"unit_cost"`
}

// PurchaseResponse salida de una compra.
type PurchaseResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Timestamp time.Time       `json:"timestamp"`
}

// CreatePurchaseSummaryRequest entrada para un snapshot de compras.
type CreatePurchaseSummaryRequest struct {
	PurchaseSummaryID string          `json:"purchaseSummaryId" validate:"required,min=1,max=255"`
	TotalPurchased    decimal.Decimal `json:"totalPurchased"`
	ChangePercentage  decimal.Decimal `json:"changePercentage"`
	Date              time.Time       `json:"date"`
}

// PurchaseSummaryResponse salida de un snapshot de compras.
type PurchaseSummaryResponse struct {
	PurchaseSummaryID string          `json:"purchaseSummaryId"`
	TotalPurchased    decimal.Decimal `json:"totalPurchased"`
	ChangePercentage  decimal.Decimal `json:"changePercentage"`
	Date              time.Time       `json:"date"`
}
