package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto (expenseId del llamador).
type CreateExpenseRequest struct {
	ExpenseID string          `json:"expenseId" validate:"required,min=1,max=255"`
	Category  string          `json:"category" validate:"required,min=1,max=255"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// UpdateExpenseRequest actualización parcial de un gasto.
type UpdateExpenseRequest struct {
	Category  *string          `json:"category" validate:"omitempty,min=1,max=255"`
	Amount    *decimal.Decimal `json:"amount"`
	Timestamp *time.Time       `json:"timestamp"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ExpenseID string          `json:"expenseId"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// CreateExpenseSummaryRequest entrada para un snapshot de gastos.
type CreateExpenseSummaryRequest struct {
	ExpenseSummaryID string          `json:"expenseSummaryId" validate:"required,min=1,max=255"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Date             time.Time       `json:"date"`
}

// ExpenseSummaryResponse salida de un snapshot de gastos.
type ExpenseSummaryResponse struct {
	ExpenseSummaryID string          `json:"expenseSummaryId"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Date             time.Time       `json:"date"`
}

// CreateExpenseByCategoryRequest entrada para un desglose por categoría.
type CreateExpenseByCategoryRequest struct {
	ExpenseByCategoryID string    `json:"expenseByCategoryId" validate:"required,min=1,max=255"`
	ExpenseSummaryID    string    `json:"expenseSummary" validate:"required"`
	Date                time.Time `json:"date"`
	Category            string    `json:"category" validate:"required,min=1,max=255"`
	Amount              int64     `json:"amount"`
}

// ExpenseByCategoryResponse salida de un desglose por categoría.
type ExpenseByCategoryResponse struct {
	ExpenseByCategoryID string    `json:"expenseByCategoryId"`
	ExpenseSummaryID    string    `json:"expenseSummary"`
	Date                time.Time `json:"date"`
	Category            string    `json:"category"`
	Amount              int64     `json:"amount"`
}
