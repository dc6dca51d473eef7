package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// ProductUseCase casos de uso de productos. Cada update dispara el chequeo
// de stock bajo contra el umbral configurado.
type ProductUseCase struct {
	products      repository.ProductRepository
	users         repository.UserRepository
	notifications repository.NotificationRepository
	lowStock      int
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(products repository.ProductRepository, users repository.UserRepository, notifications repository.NotificationRepository, lowStockThreshold int) *ProductUseCase {
	return &ProductUseCase{
		products:      products,
		users:         users,
		notifications: notifications,
		lowStock:      lowStockThreshold,
	}
}

// Create registra un producto nuevo. El dueño debe existir.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.users.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Price:         in.Price,
		Rating:        in.Rating,
		StockQuantity: in.StockQuantity,
		UserID:        in.UserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve una página de productos.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.products.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Update actualización parcial. Tras persistir revisa el stock resultante:
// si quedó por debajo del umbral notifica al dueño, sin deduplicar, aunque
// el update no haya tocado stock_quantity.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Rating != nil {
		product.Rating = in.Rating
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	if in.UserID != nil {
		owner, err := uc.users.GetByID(*in.UserID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, domain.ErrInvalidInput
		}
		product.UserID = *in.UserID
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	if err := uc.checkStockLevel(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto; ventas, compras y snapshots caen en cascada.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}

func (uc *ProductUseCase) checkStockLevel(product *entity.Product) error {
	if product.StockQuantity >= uc.lowStock {
		return nil
	}
	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    product.UserID,
		Message:   fmt.Sprintf("Low stock alert for %s. Only %d left.", product.Name, product.StockQuantity),
		CreatedAt: time.Now(),
	}
	return uc.notifications.Create(notification)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		Rating:        p.Rating,
		StockQuantity: p.StockQuantity,
		UserID:        p.UserID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
