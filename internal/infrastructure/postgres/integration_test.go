//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/tu-usuario/inventory-track/internal/domain"
	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
	"github.com/tu-usuario/inventory-track/internal/infrastructure/postgres"
)

// Correr con: go test -tags integration ./internal/infrastructure/postgres/
// Requiere Docker disponible para levantar el contenedor de PostgreSQL.

var pool *pgxpool.Pool

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("inventory_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		panic("levantar contenedor de postgres: " + err.Error())
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic("obtener DSN del contenedor: " + err.Error())
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		panic("parsear DSN: " + err.Error())
	}
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		panic("crear pool: " + err.Error())
	}

	if err := postgres.Migrate(ctx, pool); err != nil {
		panic("aplicar esquema: " + err.Error())
	}

	code := m.Run()

	pool.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func seedUser(t *testing.T, email string) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         "Usuario Test",
		PasswordHash: "$2a$10$hash-de-prueba",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, postgres.NewUserRepository(pool).Create(user))
	return user
}

func seedProduct(t *testing.T, userID, name string) *entity.Product {
	t.Helper()
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Price:         decimal.NewFromInt(100),
		StockQuantity: 10,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, postgres.NewProductRepository(pool).Create(product))
	return product
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios y transacción de registro
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_EmailDuplicado(t *testing.T) {
	repo := postgres.NewUserRepository(pool)
	user := seedUser(t, "duplicado@test.local")

	clone := *user
	clone.ID = uuid.New().String()
	err := repo.Create(&clone)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestTxRunner_RollbackSiFallaElPerfil(t *testing.T) {
	ctx := context.Background()
	runner := postgres.NewTxRunner(pool)
	userID := uuid.New().String()

	now := time.Now()
	err := runner.Run(ctx, func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Create(&entity.User{
			ID:           userID,
			Email:        "rollback@test.local",
			Name:         "Rollback",
			PasswordHash: "hash",
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
		// perfil apuntando a un usuario inexistente fuerza violación de FK
		return profiles.Create(&entity.Profile{ID: uuid.New().String(), UserID: uuid.New().String()})
	})
	require.Error(t, err)

	stored, err := postgres.NewUserRepository(pool).GetByID(userID)
	require.NoError(t, err)
	assert.Nil(t, stored, "el usuario no debe quedar a medias tras el rollback")
}

// ──────────────────────────────────────────────────────────────────────────────
// Integridad referencial y cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleRepo_ProductoInexistente(t *testing.T) {
	repo := postgres.NewSaleRepository(pool)
	err := repo.Create(&entity.Sale{
		SaleID:      uuid.New().String(),
		ProductID:   uuid.New().String(),
		Timestamp:   time.Now(),
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(100),
		TotalAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductRepo_DeleteCascadea(t *testing.T) {
	user := seedUser(t, "cascada@test.local")
	product := seedProduct(t, user.ID, "Producto Cascada")

	saleRepo := postgres.NewSaleRepository(pool)
	sale := &entity.Sale{
		SaleID:      uuid.New().String(),
		ProductID:   product.ID,
		Timestamp:   time.Now(),
		Quantity:    2,
		UnitPrice:   decimal.NewFromInt(100),
		TotalAmount: decimal.NewFromInt(200),
	}
	require.NoError(t, saleRepo.Create(sale))

	levelRepo := postgres.NewInventoryLevelRepository(pool)
	level := &entity.InventoryLevel{ID: uuid.New().String(), ProductID: product.ID, Quantity: 10}
	require.NoError(t, levelRepo.Create(level))

	require.NoError(t, postgres.NewProductRepository(pool).Delete(product.ID))

	gone, err := saleRepo.GetByID(sale.SaleID)
	require.NoError(t, err)
	assert.Nil(t, gone, "la venta debe caer en cascada con el producto")

	goneLevel, err := levelRepo.GetByID(level.ID)
	require.NoError(t, err)
	assert.Nil(t, goneLevel, "el snapshot debe caer en cascada con el producto")
}

func TestSaleRepo_IDDuplicado(t *testing.T) {
	user := seedUser(t, "venta-dup@test.local")
	product := seedProduct(t, user.ID, "Producto Venta Dup")

	repo := postgres.NewSaleRepository(pool)
	sale := &entity.Sale{
		SaleID:      uuid.New().String(),
		ProductID:   product.ID,
		Timestamp:   time.Now(),
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(50),
		TotalAmount: decimal.NewFromInt(50),
	}
	require.NoError(t, repo.Create(sale))
	assert.ErrorIs(t, repo.Create(sale), domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte de ventas por producto
// ──────────────────────────────────────────────────────────────────────────────

func TestReportRepo_SalesByProduct(t *testing.T) {
	user := seedUser(t, "reporte@test.local")
	productA := seedProduct(t, user.ID, "Producto Reporte A")
	productB := seedProduct(t, user.ID, "Producto Reporte B")

	saleRepo := postgres.NewSaleRepository(pool)
	for _, s := range []struct {
		productID string
		amount    int64
	}{
		{productA.ID, 300},
		{productA.ID, 200},
		{productB.ID, 100},
	} {
		require.NoError(t, saleRepo.Create(&entity.Sale{
			SaleID:      uuid.New().String(),
			ProductID:   s.productID,
			Timestamp:   time.Now(),
			Quantity:    1,
			UnitPrice:   decimal.NewFromInt(s.amount),
			TotalAmount: decimal.NewFromInt(s.amount),
		}))
	}

	rows, err := postgres.NewReportRepository(pool).SalesByProduct(context.Background())
	require.NoError(t, err)

	totals := map[string]decimal.Decimal{}
	for _, r := range rows {
		totals[r.ProductName] = r.TotalSales
	}
	assert.True(t, decimal.NewFromInt(500).Equal(totals["Producto Reporte A"]))
	assert.True(t, decimal.NewFromInt(100).Equal(totals["Producto Reporte B"]))
}
