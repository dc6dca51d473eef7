package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventory-track/internal/domain/entity"
	"github.com/tu-usuario/inventory-track/internal/infrastructure/postgres"
	"github.com/tu-usuario/inventory-track/pkg/config"
	"github.com/tu-usuario/inventory-track/pkg/logger"
)

// Siembra un admin y productos de demostración para entornos locales.
// Idempotente a nivel de email: si el admin ya existe no vuelve a crear nada.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	const adminEmail = "admin@inventory.local"
	existing, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing != nil {
		log.Info().Str("email", adminEmail).Msg("seed ya aplicado")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        adminEmail,
		Name:         "Admin",
		PasswordHash: string(hash),
		IsActive:     true,
		IsStaff:      true,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	if err := profileRepo.Create(&entity.Profile{ID: uuid.New().String(), UserID: admin.ID, IsAdmin: true}); err != nil {
		log.Fatal().Err(err).Msg("crear perfil admin")
	}

	demo := []struct {
		name  string
		price int64
		stock int
	}{
		{"iPhone 21", 1200, 15},
		{"Samsung Galaxy", 1000, 20},
		{"Google Pixel", 800, 8},
	}
	for _, d := range demo {
		p := &entity.Product{
			ID:            uuid.New().String(),
			Name:          d.name,
			Price:         decimal.NewFromInt(d.price),
			StockQuantity: d.stock,
			UserID:        admin.ID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := productRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("product", d.name).Msg("crear producto demo")
		}
	}

	log.Info().Str("email", adminEmail).Msg("seed aplicado")
}
