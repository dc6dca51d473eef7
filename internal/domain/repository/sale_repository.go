package repository

import "github.com/tu-usuario/inventory-track/internal/domain/entity"

// SaleRepository puerto de persistencia para Sale. El ID lo trae el llamador,
// por lo que Create debe reportar ErrDuplicate en colisión.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(saleID string) (*entity.Sale, error)
	Update(sale *entity.Sale) error
	List(limit, offset int) ([]*entity.Sale, error)
	Delete(saleID string) error
}

// SalesSummaryRepository puerto de los snapshots de ventas.
type SalesSummaryRepository interface {
	Create(s *entity.SalesSummary) error
	GetByID(id string) (*entity.SalesSummary, error)
	Update(s *entity.SalesSummary) error
	List(limit, offset int) ([]*entity.SalesSummary, error)
	Delete(id string) error
}
