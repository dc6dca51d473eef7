package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. saleId lo asigna el
// llamador y totalAmount viene ya calculado (no se deriva aquí).
type CreateSaleRequest struct {
	SaleID      string          `json:"saleId" validate:"required,min=1,max=255"`
	ProductID   string          `json:"product" validate:"required,uuid"`
	Timestamp   time.Time       `json:"timestamp"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// UpdateSaleRequest actualización parcial de una venta.
type UpdateSaleRequest struct {
	ProductID   *string          `json:"product" validate:"omitempty,uuid"`
	Timestamp   *time.Time       `json:"timestamp"`
	Quantity    *int             `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

// SaleResponse salida de una venta (llaves camelCase del contrato original).
type SaleResponse struct {
	SaleID      string          `json:"saleId"`
	ProductID   string          `json:"product"`
	Timestamp   time.Time       `json:"timestamp"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// CreateSalesSummaryRequest entrada para un snapshot de ventas.
type CreateSalesSummaryRequest struct {
	SalesSummaryID   string          `json:"salesSummaryId" validate:"required,min=1,max=255"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	ChangePercentage decimal.Decimal `json:"changePercentage"`
	Date             time.Time       `json:"date"`
}

// SalesSummaryResponse salida de un snapshot de ventas.
type SalesSummaryResponse struct {
	SalesSummaryID   string          `json:"salesSummaryId"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	ChangePercentage decimal.Decimal `json:"changePercentage"`
	Date             time.Time       `json:"date"`
}
