package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryLevelRequest entrada para un snapshot de stock.
type CreateInventoryLevelRequest struct {
	ProductID string `json:"product" validate:"required,uuid"`
	Quantity  int    `json:"quantity"`
}

// UpdateInventoryLevelRequest actualización de un snapshot de stock.
type UpdateInventoryLevelRequest struct {
	ProductID *string `json:"product" validate:"omitempty,uuid"`
	Quantity  *int    `json:"quantity"`
}

// InventoryLevelResponse salida de un snapshot de stock.
type InventoryLevelResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

// CreateProfitMarginRequest entrada para un snapshot de margen.
type CreateProfitMarginRequest struct {
	ProductID        string          `json:"product" validate:"required,uuid"`
	MarginPercentage decimal.Decimal `json:"margin_percentage"`
	Date             time.Time       `json:"date"`
}

// ProfitMarginResponse salida de un snapshot de margen.
type ProfitMarginResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product"`
	MarginPercentage decimal.Decimal `json:"margin_percentage"`
	Date             time.Time       `json:"date"`
}

// CreateSalesTrendRequest entrada para un snapshot de tendencia.
type CreateSalesTrendRequest struct {
	ProductID     string          `json:"product" validate:"required,uuid"`
	Date          time.Time       `json:"date"`
	SalesQuantity int             `json:"sales_quantity"`
	SalesValue    decimal.Decimal `json:"sales_value"`
}

// SalesTrendResponse salida de un snapshot de tendencia.
type SalesTrendResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product"`
	Date          time.Time       `json:"date"`
	SalesQuantity int             `json:"sales_quantity"`
	SalesValue    decimal.Decimal `json:"sales_value"`
}
