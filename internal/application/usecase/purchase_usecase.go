package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// PurchaseUseCase casos de uso de compras. Registrar una compra NO suma
// stock al producto: el stock solo cambia por update directo del producto.
type PurchaseUseCase struct {
	purchases repository.PurchaseRepository
	products  repository.ProductRepository
}

// NewPurchaseUseCase construye el caso de uso de compras.
func NewPurchaseUseCase(purchases repository.PurchaseRepository, products repository.ProductRepository) *PurchaseUseCase {
	return &PurchaseUseCase{purchases: purchases, products: products}
}

// Create registra una compra con timestamp del servidor.
func (uc *PurchaseUseCase) Create(in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidInput
	}
	purchase := &entity.Purchase{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitCost:  in.UnitCost,
		Timestamp: time.Now(),
	}
	if err := uc.purchases.Create(purchase); err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// GetByID devuelve una compra o ErrNotFound.
func (uc *PurchaseUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseResponse(purchase), nil
}

// List devuelve una página de compras.
func (uc *PurchaseUseCase) List(page dto.PageRequest) ([]*dto.PurchaseResponse, error) {
	page.DefaultPage()
	purchases, err := uc.purchases.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// Update actualización parcial de una compra (el timestamp original se conserva).
func (uc *PurchaseUseCase) Update(id string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
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
		purchase.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		purchase.Quantity = *in.Quantity
	}
	if in.UnitCost != nil {
		purchase.UnitCost = *in.UnitCost
	}
	if err := uc.purchases.Update(purchase); err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// Delete elimina una compra.
func (uc *PurchaseUseCase) Delete(id string) error {
	purchase, err := uc.purchases.GetByID(id)
	if err != nil {
		return err
	}
	if purchase == nil {
		return domain.ErrNotFound
	}
	return uc.purchases.Delete(id)
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:        p.ID,
		ProductID: p.ProductID,
		Quantity:  p.Quantity,
		UnitCost:  p.UnitCost,
		Timestamp: p.Timestamp,
	}
}
