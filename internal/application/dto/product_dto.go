package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=255"`
	Price         decimal.Decimal `json:"price"`
	Rating        *float64        `json:"rating"`
	StockQuantity int             `json:"stock_quantity"`
	UserID        string          `json:"user" validate:"required,uuid"`
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Price         *decimal.Decimal `json:"price"`
	Rating        *float64         `json:"rating"`
	StockQuantity *int             `json:"stock_quantity"`
	UserID        *string          `json:"user" validate:"omitempty,uuid"`
}

// ProductResponse salida de un producto. Las llaves JSON reproducen el
// contrato original del API (user = ID del dueño).
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Rating        *float64        `json:"rating"`
	StockQuantity int             `json:"stock_quantity"`
	UserID        string          `json:"user"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
