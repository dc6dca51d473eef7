package repository

import "github.com/tu-usuario/inventory-track/internal/domain/entity"

// PurchaseRepository puerto de persistencia para Purchase.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	List(limit, offset int) ([]*entity.Purchase, error)
	Delete(id string) error
}

// PurchaseSummaryRepository puerto de los snapshots de compras.
type PurchaseSummaryRepository interface {
	Create(s *entity.PurchaseSummary) error
	GetByID(id string) (*entity.PurchaseSummary, error)
	Update(s *entity.PurchaseSummary) error
	List(limit, offset int) ([]*entity.PurchaseSummary, error)
	Delete(id string) error
}
