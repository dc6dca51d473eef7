package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL (usable con pool o tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos. Pasar pool o tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste un gasto. expenseId repetido -> ErrDuplicate.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, category, amount, timestamp)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ExpenseID, expense.Category, expense.Amount, expense.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por su expenseId.
func (r *ExpenseRepo) GetByID(expenseID string) (*entity.Expense, error) {
	query := `
		SELECT expense_id, category, amount, timestamp
		FROM expenses WHERE expense_id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, expenseID).Scan(
		&e.ExpenseID, &e.Category, &e.Amount, &e.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// Update actualiza un gasto existente.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses SET category = $2, amount = $3, timestamp = $4
		WHERE expense_id = $1`
	if _, err := r.q.Exec(context.Background(), query,
		expense.ExpenseID, expense.Category, expense.Amount, expense.Timestamp); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// List lista gastos con paginación.
func (r *ExpenseRepo) List(limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT expense_id, category, amount, timestamp
		FROM expenses ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ExpenseID, &e.Category, &e.Amount, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

// Delete elimina un gasto.
func (r *ExpenseRepo) Delete(expenseID string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM expenses WHERE expense_id = $1`, expenseID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

var _ repository.ExpenseSummaryRepository = (*ExpenseSummaryRepo)(nil)

// ExpenseSummaryRepo implementación del puerto ExpenseSummaryRepository sobre PostgreSQL.
type ExpenseSummaryRepo struct {
	q Querier
}

// NewExpenseSummaryRepository construye el adaptador de snapshots de gastos. Pasar pool o tx (Querier).
func NewExpenseSummaryRepository(q Querier) *ExpenseSummaryRepo {
	return &ExpenseSummaryRepo{q: q}
}

// Create inserta un snapshot de gastos.
func (r *ExpenseSummaryRepo) Create(s *entity.ExpenseSummary) error {
	query := `
		INSERT INTO expense_summaries (expense_summary_id, total_expenses, date)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, s.ExpenseSummaryID, s.TotalExpenses, s.Date)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert expense summary: %w", err)
	}
	return nil
}

// GetByID obtiene un snapshot de gastos.
func (r *ExpenseSummaryRepo) GetByID(id string) (*entity.ExpenseSummary, error) {
	query := `
		SELECT expense_summary_id, total_expenses, date
		FROM expense_summaries WHERE expense_summary_id = $1`
	var s entity.ExpenseSummary
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ExpenseSummaryID, &s.TotalExpenses, &s.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense summary: %w", err)
	}
	return &s, nil
}

// Update actualiza un snapshot de gastos.
func (r *ExpenseSummaryRepo) Update(s *entity.ExpenseSummary) error {
	query := `
		UPDATE expense_summaries SET total_expenses = $2, date = $3
		WHERE expense_summary_id = $1`
	if _, err := r.q.Exec(context.Background(), query,
		s.ExpenseSummaryID, s.TotalExpenses, s.Date); err != nil {
		return fmt.Errorf("update expense summary: %w", err)
	}
	return nil
}

// List lista snapshots de gastos con paginación.
func (r *ExpenseSummaryRepo) List(limit, offset int) ([]*entity.ExpenseSummary, error) {
	query := `
		SELECT expense_summary_id, total_expenses, date
		FROM expense_summaries ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expense summaries: %w", err)
	}
	defer rows.Close()

	var out []*entity.ExpenseSummary
	for rows.Next() {
		var s entity.ExpenseSummary
		if err := rows.Scan(&s.ExpenseSummaryID, &s.TotalExpenses, &s.Date); err != nil {
			return nil, fmt.Errorf("scan expense summary: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// Delete elimina un snapshot de gastos; el desglose por categoría cae en cascada (FK).
func (r *ExpenseSummaryRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM expense_summaries WHERE expense_summary_id = $1`, id); err != nil {
		return fmt.Errorf("delete expense summary: %w", err)
	}
	return nil
}

var _ repository.ExpenseByCategoryRepository = (*ExpenseByCategoryRepo)(nil)

// ExpenseByCategoryRepo implementación del puerto ExpenseByCategoryRepository sobre PostgreSQL.
type ExpenseByCategoryRepo struct {
	q Querier
}

// NewExpenseByCategoryRepository construye el adaptador del desglose por categoría. Pasar pool o tx (Querier).
func NewExpenseByCategoryRepository(q Querier) *ExpenseByCategoryRepo {
	return &ExpenseByCategoryRepo{q: q}
}

// Create inserta un desglose; summary padre inexistente -> ErrInvalidInput (FK).
func (r *ExpenseByCategoryRepo) Create(e *entity.ExpenseByCategory) error {
	query := `
		INSERT INTO expense_by_category (expense_by_category_id, expense_summary_id, date, category, amount)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		e.ExpenseByCategoryID, e.ExpenseSummaryID, e.Date, e.Category, e.Amount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert expense by category: %w", err)
	}
	return nil
}

// GetByID obtiene un desglose por categoría.
func (r *ExpenseByCategoryRepo) GetByID(id string) (*entity.ExpenseByCategory, error) {
	query := `
		SELECT expense_by_category_id, expense_summary_id, date, category, amount
		FROM expense_by_category WHERE expense_by_category_id = $1`
	var e entity.ExpenseByCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ExpenseByCategoryID, &e.ExpenseSummaryID, &e.Date, &e.Category, &e.Amount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense by category: %w", err)
	}
	return &e, nil
}

// Update actualiza un desglose por categoría.
func (r *ExpenseByCategoryRepo) Update(e *entity.ExpenseByCategory) error {
	query := `
		UPDATE expense_by_category SET expense_summary_id = $2, date = $3, category = $4, amount = $5
		WHERE expense_by_category_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ExpenseByCategoryID, e.ExpenseSummaryID, e.Date, e.Category, e.Amount,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update expense by category: %w", err)
	}
	return nil
}

// List lista desgloses con paginación.
func (r *ExpenseByCategoryRepo) List(limit, offset int) ([]*entity.ExpenseByCategory, error) {
	query := `
		SELECT expense_by_category_id, expense_summary_id, date, category, amount
		FROM expense_by_category ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses by category: %w", err)
	}
	defer rows.Close()

	var out []*entity.ExpenseByCategory
	for rows.Next() {
		var e entity.ExpenseByCategory
		if err := rows.Scan(&e.ExpenseByCategoryID, &e.ExpenseSummaryID,
			&e.Date, &e.Category, &e.Amount); err != nil {
			return nil, fmt.Errorf("scan expense by category: %w", err)
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}

// Delete elimina un desglose por categoría.
func (r *ExpenseByCategoryRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM expense_by_category WHERE expense_by_category_id = $1`, id); err != nil {
		return fmt.Errorf("delete expense by category: %w", err)
	}
	return nil
}
