package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. Pertenece a un usuario
// (cae en cascada al borrarlo) y arrastra sus ventas, compras y snapshots.
type Product struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	Rating        *float64 // opcional
	StockQuantity int
	UserID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
