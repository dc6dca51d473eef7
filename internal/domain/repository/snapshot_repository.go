package repository

import "github.com/tu-usuario/inventory-track/internal/domain/entity"

// InventoryLevelRepository puerto de los snapshots de stock.
type InventoryLevelRepository interface {
	Create(l *entity.InventoryLevel) error
	GetByID(id string) (*entity.InventoryLevel, error)
	Update(l *entity.InventoryLevel) error
	List(limit, offset int) ([]*entity.InventoryLevel, error)
	Delete(id string) error
}

// ProfitMarginRepository puerto de los snapshots de margen.
type ProfitMarginRepository interface {
	Create(m *entity.ProfitMargin) error
	GetByID(id string) (*entity.ProfitMargin, error)
	Update(m *entity.ProfitMargin) error
	List(limit, offset int) ([]*entity.ProfitMargin, error)
	Delete(id string) error
}

// SalesTrendRepository puerto de los snapshots de tendencia de ventas.
type SalesTrendRepository interface {
	Create(t *entity.SalesTrend) error
	GetByID(id string) (*entity.SalesTrend, error)
	Update(t *entity.SalesTrend) error
	List(limit, offset int) ([]*entity.SalesTrend, error)
	Delete(id string) error
}
