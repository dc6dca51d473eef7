package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate aplica el esquema de forma idempotente (CREATE TABLE IF NOT EXISTS).
// Todas las FKs van con ON DELETE CASCADE: borrar un usuario arrastra sus
// productos y notificaciones, y borrar un producto arrastra ventas, compras
// y snapshots.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			is_active     BOOLEAN NOT NULL DEFAULT TRUE,
			is_staff      BOOLEAN NOT NULL DEFAULT FALSE,
			is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id       TEXT PRIMARY KEY,
			user_id  TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS auth_tokens (
			key        TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL,
			price          NUMERIC(10,2) NOT NULL,
			rating         DOUBLE PRECISION,
			stock_quantity INTEGER NOT NULL DEFAULT 0,
			user_id        TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			sale_id      TEXT PRIMARY KEY,
			product_id   TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			timestamp    TIMESTAMPTZ NOT NULL,
			quantity     INTEGER NOT NULL,
			unit_price   NUMERIC(10,2) NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS purchases (
			id         TEXT PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			quantity   INTEGER NOT NULL,
			unit_cost  NUMERIC(10,2) NOT NULL,
			timestamp  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			expense_id TEXT PRIMARY KEY,
			category   TEXT NOT NULL,
			amount     NUMERIC(10,2) NOT NULL,
			timestamp  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales_summaries (
			sales_summary_id  TEXT PRIMARY KEY,
			total_value       NUMERIC(10,2) NOT NULL,
			change_percentage NUMERIC(10,2) NOT NULL DEFAULT 0,
			date              TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS purchase_summaries (
			purchase_summary_id TEXT PRIMARY KEY,
			total_purchased     NUMERIC(10,2) NOT NULL,
			change_percentage   NUMERIC(10,2) NOT NULL DEFAULT 0,
			date                TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expense_summaries (
			expense_summary_id TEXT PRIMARY KEY,
			total_expenses     NUMERIC(10,2) NOT NULL,
			date               TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expense_by_category (
			expense_by_category_id TEXT PRIMARY KEY,
			expense_summary_id     TEXT NOT NULL REFERENCES expense_summaries(expense_summary_id) ON DELETE CASCADE,
			date                   TIMESTAMPTZ NOT NULL,
			category               TEXT NOT NULL,
			amount                 BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS inventory_levels (
			id         TEXT PRIMARY KEY,
			product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			quantity   INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS profit_margins (
			id                TEXT PRIMARY KEY,
			product_id        TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			margin_percentage NUMERIC(10,2) NOT NULL,
			date              TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales_trends (
			id             TEXT PRIMARY KEY,
			product_id     TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			date           TIMESTAMPTZ NOT NULL,
			sales_quantity INTEGER NOT NULL,
			sales_value    NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			message    TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			is_read    BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_user ON products(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_product ON sales(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_product ON purchases(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
