package usecase

import (
	"time"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// SaleUseCase casos de uso de ventas. totalAmount se persiste tal cual
// llega: el sistema no lo recalcula a partir de quantity × unitPrice.
type SaleUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso de ventas.
func NewSaleUseCase(sales repository.SaleRepository, products repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{sales: sales, products: products}
}

// Create registra una venta con el saleId que trae el llamador.
// Producto inexistente o saleId repetido fallan la petición.
func (uc *SaleUseCase) Create(in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.SaleID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidInput
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	sale := &entity.Sale{
		SaleID:      in.SaleID,
		ProductID:   in.ProductID,
		Timestamp:   ts,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		TotalAmount: in.TotalAmount,
	}
	if err := uc.sales.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID devuelve una venta o ErrNotFound.
func (uc *SaleUseCase) GetByID(saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// List devuelve una página de ventas.
func (uc *SaleUseCase) List(page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	sales, err := uc.sales.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Update actualización parcial de una venta.
func (uc *SaleUseCase) Update(saleID string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID != nil {
		product, err := uc.products.GetByID(*in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrInvalidInput
		}
		sale.ProductID = *in.ProductID
	}
	if in.Timestamp != nil {
		sale.Timestamp = *in.Timestamp
	}
	if in.Quantity != nil {
		sale.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		sale.UnitPrice = *in.UnitPrice
	}
	if in.TotalAmount != nil {
		sale.TotalAmount = *in.TotalAmount
	}
	if err := uc.sales.Update(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Delete elimina una venta.
func (uc *SaleUseCase) Delete(saleID string) error {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.sales.Delete(saleID)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		SaleID:      s.SaleID,
		ProductID:   s.ProductID,
		Timestamp:   s.Timestamp,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
	}
}
