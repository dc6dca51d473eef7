package usecase

import (
	"time"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// SummaryUseCase casos de uso de los snapshots agregados (ventas, compras,
// gastos y desglose por categoría). Son datos precalculados que el llamador
// inserta con su propio ID; el sistema nunca los recalcula en lectura.
type SummaryUseCase struct {
	sales      repository.SalesSummaryRepository
	purchases  repository.PurchaseSummaryRepository
	expenses   repository.ExpenseSummaryRepository
	byCategory repository.ExpenseByCategoryRepository
}

// NewSummaryUseCase construye el caso de uso de snapshots agregados.
func NewSummaryUseCase(
	sales repository.SalesSummaryRepository,
	purchases repository.PurchaseSummaryRepository,
	expenses repository.ExpenseSummaryRepository,
	byCategory repository.ExpenseByCategoryRepository,
) *SummaryUseCase {
	return &SummaryUseCase{sales: sales, purchases: purchases, expenses: expenses, byCategory: byCategory}
}

// --- sales summaries ---

// CreateSalesSummary inserta un snapshot de ventas.
func (uc *SummaryUseCase) CreateSalesSummary(in dto.CreateSalesSummaryRequest) (*dto.SalesSummaryResponse, error) {
	if in.SalesSummaryID == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.SalesSummary{
		SalesSummaryID:   in.SalesSummaryID,
		TotalValue:       in.TotalValue,
		ChangePercentage: in.ChangePercentage,
		Date:             defaultDate(in.Date),
	}
	if err := uc.sales.Create(s); err != nil {
		return nil, err
	}
	return toSalesSummaryResponse(s), nil
}

// GetSalesSummary devuelve un snapshot de ventas o ErrNotFound.
func (uc *SummaryUseCase) GetSalesSummary(id string) (*dto.SalesSummaryResponse, error) {
	s, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSalesSummaryResponse(s), nil
}

// ListSalesSummaries devuelve una página de snapshots de ventas.
func (uc *SummaryUseCase) ListSalesSummaries(page dto.PageRequest) ([]*dto.SalesSummaryResponse, error) {
	page.DefaultPage()
	rows, err := uc.sales.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SalesSummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, toSalesSummaryResponse(s))
	}
	return out, nil
}

// UpdateSalesSummary reemplaza los campos de un snapshot de ventas.
func (uc *SummaryUseCase) UpdateSalesSummary(id string, in dto.CreateSalesSummaryRequest) (*dto.SalesSummaryResponse, error) {
	s, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.TotalValue = in.TotalValue
	s.ChangePercentage = in.ChangePercentage
	if !in.Date.IsZero() {
		s.Date = in.Date
	}
	if err := uc.sales.Update(s); err != nil {
		return nil, err
	}
	return toSalesSummaryResponse(s), nil
}

// DeleteSalesSummary elimina un snapshot de ventas.
func (uc *SummaryUseCase) DeleteSalesSummary(id string) error {
	s, err := uc.sales.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.sales.Delete(id)
}

// --- purchase summaries ---

// CreatePurchaseSummary inserta un snapshot de compras.
func (uc *SummaryUseCase) CreatePurchaseSummary(in dto.CreatePurchaseSummaryRequest) (*dto.PurchaseSummaryResponse, error) {
	if in.PurchaseSummaryID == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.PurchaseSummary{
		PurchaseSummaryID: in.PurchaseSummaryID,
		TotalPurchased:    in.TotalPurchased,
		ChangePercentage:  in.ChangePercentage,
		Date:              defaultDate(in.Date),
	}
	if err := uc.purchases.Create(s); err != nil {
		return nil, err
	}
	return toPurchaseSummaryResponse(s), nil
}

// GetPurchaseSummary devuelve un snapshot de compras o ErrNotFound.
func (uc *SummaryUseCase) GetPurchaseSummary(id string) (*dto.PurchaseSummaryResponse, error) {
	s, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toPurchaseSummaryResponse(s), nil
}

// ListPurchaseSummaries devuelve una página de snapshots de compras.
func (uc *SummaryUseCase) ListPurchaseSummaries(page dto.PageRequest) ([]*dto.PurchaseSummaryResponse, error) {
	page.DefaultPage()
	rows, err := uc.purchases.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseSummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, toPurchaseSummaryResponse(s))
	}
	return out, nil
}

// UpdatePurchaseSummary reemplaza los campos de un snapshot de compras.
func (uc *SummaryUseCase) UpdatePurchaseSummary(id string, in dto.CreatePurchaseSummaryRequest) (*dto.PurchaseSummaryResponse, error) {
	s, err := uc.purchases.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.TotalPurchased = in.TotalPurchased
	s.ChangePercentage = in.ChangePercentage
	if !in.Date.IsZero() {
		s.Date = in.Date
	}
	if err := uc.purchases.Update(s); err != nil {
		return nil, err
	}
	return toPurchaseSummaryResponse(s), nil
}

// DeletePurchaseSummary elimina un snapshot de compras.
func (uc *SummaryUseCase) DeletePurchaseSummary(id string) error {
	s, err := uc.purchases.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.purchases.Delete(id)
}

// --- expense summaries ---

// CreateExpenseSummary inserta un snapshot de gastos.
func (uc *SummaryUseCase) CreateExpenseSummary(in dto.CreateExpenseSummaryRequest) (*dto.ExpenseSummaryResponse, error) {
	if in.ExpenseSummaryID == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.ExpenseSummary{
		ExpenseSummaryID: in.ExpenseSummaryID,
		TotalExpenses:    in.TotalExpenses,
		Date:             defaultDate(in.Date),
	}
	if err := uc.expenses.Create(s); err != nil {
		return nil, err
	}
	return toExpenseSummaryResponse(s), nil
}

// GetExpenseSummary devuelve un snapshot de gastos o ErrNotFound.
func (uc *SummaryUseCase) GetExpenseSummary(id string) (*dto.ExpenseSummaryResponse, error) {
	s, err := uc.expenses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseSummaryResponse(s), nil
}

// ListExpenseSummaries devuelve una página de snapshots de gastos.
func (uc *SummaryUseCase) ListExpenseSummaries(page dto.PageRequest) ([]*dto.ExpenseSummaryResponse, error) {
	page.DefaultPage()
	rows, err := uc.expenses.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseSummaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, toExpenseSummaryResponse(s))
	}
	return out, nil
}

// UpdateExpenseSummary reemplaza los campos de un snapshot de gastos.
func (uc *SummaryUseCase) UpdateExpenseSummary(id string, in dto.CreateExpenseSummaryRequest) (*dto.ExpenseSummaryResponse, error) {
	s, err := uc.expenses.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.TotalExpenses = in.TotalExpenses
	if !in.Date.IsZero() {
		s.Date = in.Date
	}
	if err := uc.expenses.Update(s); err != nil {
		return nil, err
	}
	return toExpenseSummaryResponse(s), nil
}

// DeleteExpenseSummary elimina un snapshot de gastos; el desglose por
// categoría asociado cae en cascada.
func (uc *SummaryUseCase) DeleteExpenseSummary(id string) error {
	s, err := uc.expenses.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.expenses.Delete(id)
}

// --- expense by category ---

// CreateExpenseByCategory inserta un desglose; el summary padre debe existir.
func (uc *SummaryUseCase) CreateExpenseByCategory(in dto.CreateExpenseByCategoryRequest) (*dto.ExpenseByCategoryResponse, error) {
	if in.ExpenseByCategoryID == "" || in.ExpenseSummaryID == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	parent, err := uc.expenses.GetByID(in.ExpenseSummaryID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.ExpenseByCategory{
		ExpenseByCategoryID: in.ExpenseByCategoryID,
		ExpenseSummaryID:    in.ExpenseSummaryID,
		Date:                defaultDate(in.Date),
		Category:            in.Category,
		Amount:              in.Amount,
	}
	if err := uc.byCategory.Create(e); err != nil {
		return nil, err
	}
	return toExpenseByCategoryResponse(e), nil
}

// GetExpenseByCategory devuelve un desglose o ErrNotFound.
func (uc *SummaryUseCase) GetExpenseByCategory(id string) (*dto.ExpenseByCategoryResponse, error) {
	e, err := uc.byCategory.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseByCategoryResponse(e), nil
}

// ListExpensesByCategory devuelve una página de desgloses.
func (uc *SummaryUseCase) ListExpensesByCategory(page dto.PageRequest) ([]*dto.ExpenseByCategoryResponse, error) {
	page.DefaultPage()
	rows, err := uc.byCategory.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseByCategoryResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, toExpenseByCategoryResponse(e))
	}
	return out, nil
}

// UpdateExpenseByCategory reemplaza los campos de un desglose.
func (uc *SummaryUseCase) UpdateExpenseByCategory(id string, in dto.CreateExpenseByCategoryRequest) (*dto.ExpenseByCategoryResponse, error) {
	e, err := uc.byCategory.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.ExpenseSummaryID != "" && in.ExpenseSummaryID != e.ExpenseSummaryID {
		parent, err := uc.expenses.GetByID(in.ExpenseSummaryID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrInvalidInput
		}
		e.ExpenseSummaryID = in.ExpenseSummaryID
	}
	if in.Category != "" {
		e.Category = in.Category
	}
	e.Amount = in.Amount
	if !in.Date.IsZero() {
		e.Date = in.Date
	}
	if err := uc.byCategory.Update(e); err != nil {
		return nil, err
	}
	return toExpenseByCategoryResponse(e), nil
}

// DeleteExpenseByCategory elimina un desglose.
func (uc *SummaryUseCase) DeleteExpenseByCategory(id string) error {
	e, err := uc.byCategory.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.byCategory.Delete(id)
}

func defaultDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

func toSalesSummaryResponse(s *entity.SalesSummary) *dto.SalesSummaryResponse {
	return &dto.SalesSummaryResponse{
		SalesSummaryID:   s.SalesSummaryID,
		TotalValue:       s.TotalValue,
		ChangePercentage: s.ChangePercentage,
		Date:             s.Date,
	}
}

func toPurchaseSummaryResponse(s *entity.PurchaseSummary) *dto.PurchaseSummaryResponse {
	return &dto.PurchaseSummaryResponse{
		PurchaseSummaryID: s.PurchaseSummaryID,
		TotalPurchased:    s.TotalPurchased,
		ChangePercentage:  s.ChangePercentage,
		Date:              s.Date,
	}
}

func toExpenseSummaryResponse(s *entity.ExpenseSummary) *dto.ExpenseSummaryResponse {
	return &dto.ExpenseSummaryResponse{
		ExpenseSummaryID: s.ExpenseSummaryID,
		TotalExpenses:    s.TotalExpenses,
		Date:             s.Date,
	}
}

func toExpenseByCategoryResponse(e *entity.ExpenseByCategory) *dto.ExpenseByCategoryResponse {
	return &dto.ExpenseByCategoryResponse{
		ExpenseByCategoryID: e.ExpenseByCategoryID,
		ExpenseSummaryID:    e.ExpenseSummaryID,
		Date:                e.Date,
		Category:            e.Category,
		Amount:              e.Amount,
	}
}
