package repository

import "github.com/tu-usuario/inventory-track/internal/domain/entity"

// ExpenseRepository puerto de persistencia para Expense (ID del llamador).
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(expenseID string) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	List(limit, offset int) ([]*entity.Expense, error)
	Delete(expenseID string) error
}

// ExpenseSummaryRepository puerto de los snapshots de gastos.
type ExpenseSummaryRepository interface {
	Create(s *entity.ExpenseSummary) error
	GetByID(id string) (*entity.ExpenseSummary, error)
	Update(s *entity.ExpenseSummary) error
	List(limit, offset int) ([]*entity.ExpenseSummary, error)
	Delete(id string) error
}

// ExpenseByCategoryRepository puerto del desglose por categoría.
type ExpenseByCategoryRepository interface {
	Create(e *entity.ExpenseByCategory) error
	GetByID(id string) (*entity.ExpenseByCategory, error)
	Update(e *entity.ExpenseByCategory) error
	List(limit, offset int) ([]*entity.ExpenseByCategory, error)
	Delete(id string) error
}
