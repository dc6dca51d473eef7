package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/inventory-track/internal/application/auth"
	"github.com/tu-usuario/inventory-track/internal/application/importer"
	"github.com/tu-usuario/inventory-track/internal/application/reports"
	"github.com/tu-usuario/inventory-track/internal/application/usecase"
	"github.com/tu-usuario/inventory-track/internal/infrastructure/cache"
	"github.com/tu-usuario/inventory-track/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventory-track/internal/interfaces/http"
	"github.com/tu-usuario/inventory-track/pkg/config"
	"github.com/tu-usuario/inventory-track/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

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
	tokenRepo := postgres.NewTokenRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	salesSummaryRepo := postgres.NewSalesSummaryRepository(pool)
	purchaseSummaryRepo := postgres.NewPurchaseSummaryRepository(pool)
	expenseSummaryRepo := postgres.NewExpenseSummaryRepository(pool)
	expenseByCategoryRepo := postgres.NewExpenseByCategoryRepository(pool)
	levelRepo := postgres.NewInventoryLevelRepository(pool)
	marginRepo := postgres.NewProfitMarginRepository(pool)
	trendRepo := postgres.NewSalesTrendRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// El caché de reportes es opcional: sin REDIS_ADDR (o con Redis caído)
	// el reporte se sirve directo desde la DB.
	var reportCache reports.Cache
	if cfg.Redis.Addr != "" {
		c, err := cache.New(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, reportes sin caché")
		} else {
			defer c.Close()
			reportCache = c
		}
	}

	authUC := auth.NewAuthUseCase(userRepo, profileRepo, tokenRepo, txRunner, auth.JWTConfig{
		Secret:       cfg.JWT.Secret,
		ExpMinutes:   cfg.JWT.ExpMinutes,
		RefreshHours: cfg.JWT.RefreshHours,
		Issuer:       cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, userRepo, notificationRepo, cfg.Inventory.LowStockThreshold)
	saleUC := usecase.NewSaleUseCase(saleRepo, productRepo)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, productRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	summaryUC := usecase.NewSummaryUseCase(salesSummaryRepo, purchaseSummaryRepo, expenseSummaryRepo, expenseByCategoryRepo)
	snapshotUC := usecase.NewSnapshotUseCase(levelRepo, marginRepo, trendRepo, productRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, userRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	importerUC := importer.NewUseCase(productRepo, log)
	reportsUC := reports.NewUseCase(reportRepo, reportCache, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Track API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		SaleUC:         saleUC,
		PurchaseUC:     purchaseUC,
		ExpenseUC:      expenseUC,
		SummaryUC:      summaryUC,
		SnapshotUC:     snapshotUC,
		NotificationUC: notificationUC,
		UserUC:         userUC,
		ImporterUC:     importerUC,
		ReportsUC:      reportsUC,
		JWTSecret:      cfg.JWT.Secret,
		Tokens:         tokenRepo,
		Users:          userRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
