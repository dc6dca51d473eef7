package usecase

import (
	"time"

	"github.com/tu-usuario/inventory-track/internal/application/dto"
	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// ExpenseUseCase casos de uso de gastos. La categoría es texto libre,
// sin catálogo que la restrinja.
type ExpenseUseCase struct {
	expenses repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso de gastos.
func NewExpenseUseCase(expenses repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses}
}

// Create registra un gasto con el expenseId que trae el llamador.
func (uc *ExpenseUseCase) Create(in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.ExpenseID == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	expense := &entity.Expense{
		ExpenseID: in.ExpenseID,
		Category:  in.Category,
		Amount:    in.Amount,
		Timestamp: ts,
	}
	if err := uc.expenses.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID devuelve un gasto o ErrNotFound.
func (uc *ExpenseUseCase) GetByID(expenseID string) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenses.GetByID(expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(expense), nil
}

// List devuelve una página de gastos.
func (uc *ExpenseUseCase) List(page dto.PageRequest) ([]*dto.ExpenseResponse, error) {
	page.DefaultPage()
	expenses, err := uc.expenses.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// Update actualización parcial de un gasto.
func (uc *ExpenseUseCase) Update(expenseID string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenses.GetByID(expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.Category = *in.Category
	}
	if in.Amount != nil {
		expense.Amount = *in.Amount
	}
	if in.Timestamp != nil {
		expense.Timestamp = *in.Timestamp
	}
	if err := uc.expenses.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// Delete elimina un gasto.
func (uc *ExpenseUseCase) Delete(expenseID string) error {
	expense, err := uc.expenses.GetByID(expenseID)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.expenses.Delete(expenseID)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ExpenseID: e.ExpenseID,
		Category:  e.Category,
		Amount:    e.Amount,
		Timestamp: e.Timestamp,
	}
}
