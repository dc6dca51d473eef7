package usecase

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// SnapshotUseCase casos de uso de los snapshots por producto: niveles de
// stock, márgenes y tendencias. Todos referencian un producto existente
// y caen en cascada cuando este se borra.
type SnapshotUseCase struct {
	levels   repository.InventoryLevelRepository
	margins  repository.ProfitMarginRepository
	trends   repository.SalesTrendRepository
	products repository.ProductRepository
}

// NewSnapshotUseCase construye el caso de uso de snapshots por producto.
func NewSnapshotUseCase(
	levels repository.InventoryLevelRepository,
	margins repository.ProfitMarginRepository,
	trends repository.SalesTrendRepository,
	products repository.ProductRepository,
) *SnapshotUseCase {
	return &SnapshotUseCase{levels: levels, margins: margins, trends: trends, products: products}
}

func (uc *SnapshotUseCase) productExists(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

// --- inventory levels ---

// CreateInventoryLevel inserta un snapshot de stock.
func (uc *SnapshotUseCase) CreateInventoryLevel(in dto.CreateInventoryLevelRequest) (*dto.InventoryLevelResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.productExists(in.ProductID); err != nil {
		return nil, err
	}
	l := &entity.InventoryLevel{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if err := uc.levels.Create(l); err != nil {
		return nil, err
	}
	return toInventoryLevelResponse(l), nil
}

// GetInventoryLevel devuelve un snapshot de stock o ErrNotFound.
func (uc *SnapshotUseCase) GetInventoryLevel(id string) (*dto.InventoryLevelResponse, error) {
	l, err := uc.levels.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return toInventoryLevelResponse(l), nil
}

// ListInventoryLevels devuelve una página de snapshots de stock.
func (uc *SnapshotUseCase) ListInventoryLevels(page dto.PageRequest) ([]*dto.InventoryLevelResponse, error) {
	page.DefaultPage()
	rows, err := uc.levels.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryLevelResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, toInventoryLevelResponse(l))
	}
	return out, nil
}

// UpdateInventoryLevel actualización parcial de un snapshot de stock.
func (uc *SnapshotUseCase) UpdateInventoryLevel(id string, in dto.UpdateInventoryLevelRequest) (*dto.InventoryLevelResponse, error) {
	l, err := uc.levels.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID != nil {
		if err := uc.productExists(*in.ProductID); err != nil {
			return nil, err
		}
		l.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		l.Quantity = *in.Quantity
	}
	if err := uc.levels.Update(l); err != nil {
		return nil, err
	}
	return toInventoryLevelResponse(l), nil
}

// DeleteInventoryLevel elimina un snapshot de stock.
func (uc *SnapshotUseCase) DeleteInventoryLevel(id string) error {
	l, err := uc.levels.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return domain.ErrNotFound
	}
	return uc.levels.Delete(id)
}

// --- profit margins ---

// CreateProfitMargin inserta un snapshot de margen.
func (uc *SnapshotUseCase) CreateProfitMargin(in dto.CreateProfitMarginRequest) (*dto.ProfitMarginResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.productExists(in.ProductID); err != nil {
		return nil, err
	}
	m := &entity.ProfitMargin{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		MarginPercentage: in.MarginPercentage,
		Date:             defaultDate(in.Date),
	}
	if err := uc.margins.Create(m); err != nil {
		return nil, err
	}
	return toProfitMarginResponse(m), nil
}

// GetProfitMargin devuelve un snapshot de margen o ErrNotFound.
func (uc *SnapshotUseCase) GetProfitMargin(id string) (*dto.ProfitMarginResponse, error) {
	m, err := uc.margins.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toProfitMarginResponse(m), nil
}

// ListProfitMargins devuelve una página de snapshots de margen.
func (uc *SnapshotUseCase) ListProfitMargins(page dto.PageRequest) ([]*dto.ProfitMarginResponse, error) {
	page.DefaultPage()
	rows, err := uc.margins.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProfitMarginResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toProfitMarginResponse(m))
	}
	return out, nil
}

// UpdateProfitMargin reemplaza los campos de un snapshot de margen.
func (uc *SnapshotUseCase) UpdateProfitMargin(id string, in dto.CreateProfitMarginRequest) (*dto.ProfitMarginResponse, error) {
	m, err := uc.margins.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID != "" && in.ProductID != m.ProductID {
		if err := uc.productExists(in.ProductID); err != nil {
			return nil, err
		}
		m.ProductID = in.ProductID
	}
	m.MarginPercentage = in.MarginPercentage
	if !in.Date.IsZero() {
		m.Date = in.Date
	}
	if err := uc.margins.Update(m); err != nil {
		return nil, err
	}
	return toProfitMarginResponse(m), nil
}

// DeleteProfitMargin elimina un snapshot de margen.
func (uc *SnapshotUseCase) DeleteProfitMargin(id string) error {
	m, err := uc.margins.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.margins.Delete(id)
}

// --- sales trends ---

// CreateSalesTrend inserta un snapshot de tendencia.
func (uc *SnapshotUseCase) CreateSalesTrend(in dto.CreateSalesTrendRequest) (*dto.SalesTrendResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.productExists(in.ProductID); err != nil {
		return nil, err
	}
	t := &entity.SalesTrend{
		ID:            uuid.New().String(),
		ProductID:     in.ProductID,
		Date:          defaultDate(in.Date),
		SalesQuantity: in.SalesQuantity,
		SalesValue:    in.SalesValue,
	}
	if err := uc.trends.Create(t); err != nil {
		return nil, err
	}
	return toSalesTrendResponse(t), nil
}

// GetSalesTrend devuelve un snapshot de tendencia o ErrNotFound.
func (uc *SnapshotUseCase) GetSalesTrend(id string) (*dto.SalesTrendResponse, error) {
	t, err := uc.trends.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	return toSalesTrendResponse(t), nil
}

// ListSalesTrends devuelve una página de snapshots de tendencia.
func (uc *SnapshotUseCase) ListSalesTrends(page dto.PageRequest) ([]*dto.SalesTrendResponse, error) {
	page.DefaultPage()
	rows, err := uc.trends.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SalesTrendResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, toSalesTrendResponse(t))
	}
	return out, nil
}

// UpdateSalesTrend reemplaza los campos de un snapshot de tendencia.
func (uc *SnapshotUseCase) UpdateSalesTrend(id string, in dto.CreateSalesTrendRequest) (*dto.SalesTrendResponse, error) {
	t, err := uc.trends.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID != "" && in.ProductID != t.ProductID {
		if err := uc.productExists(in.ProductID); err != nil {
			return nil, err
		}
		t.ProductID = in.ProductID
	}
	t.SalesQuantity = in.SalesQuantity
	t.SalesValue = in.SalesValue
	if !in.Date.IsZero() {
		t.Date = in.Date
	}
	if err := uc.trends.Update(t); err != nil {
		return nil, err
	}
	return toSalesTrendResponse(t), nil
}

// DeleteSalesTrend elimina un snapshot de tendencia.
func (uc *SnapshotUseCase) DeleteSalesTrend(id string) error {
	t, err := uc.trends.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.trends.Delete(id)
}

func toInventoryLevelResponse(l *entity.InventoryLevel) *dto.InventoryLevelResponse {
	return &dto.InventoryLevelResponse{ID: l.ID, ProductID: l.ProductID, Quantity: l.Quantity}
}

func toProfitMarginResponse(m *entity.ProfitMargin) *dto.ProfitMarginResponse {
	return &dto.ProfitMarginResponse{ID: m.ID, ProductID: m.ProductID, MarginPercentage: m.MarginPercentage, Date: m.Date}
}

func toSalesTrendResponse(t *entity.SalesTrend) *dto.SalesTrendResponse {
	return &dto.SalesTrendResponse{ID: t.ID, ProductID: t.ProductID, Date: t.Date, SalesQuantity: t.SalesQuantity, SalesValue: t.SalesValue}
}
