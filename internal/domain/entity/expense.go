package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto con categoría libre. El ID lo asigna el llamador.
type Expense struct {
	ExpenseID string
	Category  string
	Amount    decimal.Decimal
	Timestamp time.Time // fecha del gasto
}

// ExpenseSummary snapshot agregado precalculado de gastos.
type ExpenseSummary struct {
	ExpenseSummaryID string
	TotalExpenses    decimal.Decimal
	Date             time.Time
}

// ExpenseByCategory desglose por categoría de un ExpenseSummary
// (cae en cascada al borrar el summary).
type ExpenseByCategory struct {
	ExpenseByCategoryID string
	ExpenseSummaryID    string
	Date                time.Time
	Category            string
	Amount              int64
}
