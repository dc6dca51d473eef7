package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventory-track/internal/application/auth"
	"github.com/tu-usuario/inventory-track/internal/application/importer"
	"github.com/tu-usuario/inventory-track/internal/application/reports"
	"github.com/tu-usuario/inventory-track/internal/application/usecase"
	"github.com/tu-usuario/inventory-track/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	SaleUC         *usecase.SaleUseCase
	PurchaseUC     *usecase.PurchaseUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	SummaryUC      *usecase.SummaryUseCase
	SnapshotUC     *usecase.SnapshotUseCase
	NotificationUC *usecase.NotificationUseCase
	UserUC         *usecase.UserUseCase
	ImporterUC     *importer.UseCase
	ReportsUC      *reports.UseCase

	JWTSecret string
	Tokens    repository.TokenRepository
	Users     repository.UserRepository
}

// Router registra las rutas de la API. El acceso es abierto salvo donde se
// indica: el CRUD de recursos no exige identidad (política del contrato
// original), /users/ exige admin y el import exige usuario autenticado.
func Router(app *fiber.App, deps RouterDeps) {
	authDeps := AuthDeps{JWTSecret: deps.JWTSecret, Tokens: deps.Tokens, Users: deps.Users}
	optional := AuthOptional(authDeps)
	required := AuthRequired(authDeps)

	// Identidad
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Post("/api/token", authHandler.ObtainToken)
	// la ruta es abierta pero el handler corta con 401 si no llegó identidad
	app.Put("/profile", optional, authHandler.UpdateProfile)

	// Usuarios: listado completo (admin) y listado público reducido
	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", optional, RequireAdmin(), userHandler.List)
	app.Get("/users/:id", optional, RequireAdmin(), userHandler.GetByID)
	app.Get("/api/users", userHandler.PublicList)

	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Sales
	sales := app.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReportsUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Purchases
	purchases := app.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Expenses
	expenses := app.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Snapshots agregados
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	salesSummary := app.Group("/sales_summary")
	salesSummary.Post("/", summaryHandler.CreateSalesSummary)
	salesSummary.Get("/", summaryHandler.ListSalesSummaries)
	salesSummary.Get("/:id", summaryHandler.GetSalesSummary)
	salesSummary.Put("/:id", summaryHandler.UpdateSalesSummary)
	salesSummary.Delete("/:id", summaryHandler.DeleteSalesSummary)

	purchaseSummary := app.Group("/purchase_summary")
	purchaseSummary.Post("/", summaryHandler.CreatePurchaseSummary)
	purchaseSummary.Get("/", summaryHandler.ListPurchaseSummaries)
	purchaseSummary.Get("/:id", summaryHandler.GetPurchaseSummary)
	purchaseSummary.Put("/:id", summaryHandler.UpdatePurchaseSummary)
	purchaseSummary.Delete("/:id", summaryHandler.DeletePurchaseSummary)

	expenseSummary := app.Group("/expense_summary")
	expenseSummary.Post("/", summaryHandler.CreateExpenseSummary)
	expenseSummary.Get("/", summaryHandler.ListExpenseSummaries)
	expenseSummary.Get("/:id", summaryHandler.GetExpenseSummary)
	expenseSummary.Put("/:id", summaryHandler.UpdateExpenseSummary)
	expenseSummary.Delete("/:id", summaryHandler.DeleteExpenseSummary)

	expenseByCategory := app.Group("/expense_by_category")
	expenseByCategory.Post("/", summaryHandler.CreateExpenseByCategory)
	expenseByCategory.Get("/", summaryHandler.ListExpensesByCategory)
	expenseByCategory.Get("/:id", summaryHandler.GetExpenseByCategory)
	expenseByCategory.Put("/:id", summaryHandler.UpdateExpenseByCategory)
	expenseByCategory.Delete("/:id", summaryHandler.DeleteExpenseByCategory)

	// Snapshots por producto
	snapshotHandler := NewSnapshotHandler(deps.SnapshotUC)
	levels := app.Group("/inventory_levels")
	levels.Post("/", snapshotHandler.CreateInventoryLevel)
	levels.Get("/", snapshotHandler.ListInventoryLevels)
	levels.Get("/:id", snapshotHandler.GetInventoryLevel)
	levels.Put("/:id", snapshotHandler.UpdateInventoryLevel)
	levels.Delete("/:id", snapshotHandler.DeleteInventoryLevel)

	margins := app.Group("/profit_margins")
	margins.Post("/", snapshotHandler.CreateProfitMargin)
	margins.Get("/", snapshotHandler.ListProfitMargins)
	margins.Get("/:id", snapshotHandler.GetProfitMargin)
	margins.Put("/:id", snapshotHandler.UpdateProfitMargin)
	margins.Delete("/:id", snapshotHandler.DeleteProfitMargin)

	trends := app.Group("/sales_trends")
	trends.Post("/", snapshotHandler.CreateSalesTrend)
	trends.Get("/", snapshotHandler.ListSalesTrends)
	trends.Get("/:id", snapshotHandler.GetSalesTrend)
	trends.Put("/:id", snapshotHandler.UpdateSalesTrend)
	trends.Delete("/:id", snapshotHandler.DeleteSalesTrend)

	// Notifications: misma colección bajo dos prefijos (contrato original)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	for _, group := range []fiber.Router{app.Group("/notifications"), app.Group("/api/notifications")} {
		group.Post("/", notificationHandler.Create)
		group.Get("/", notificationHandler.List)
		group.Get("/:id", notificationHandler.GetByID)
		group.Put("/:id/read", notificationHandler.MarkRead)
		group.Put("/:id", notificationHandler.Update)
		group.Delete("/:id", notificationHandler.Delete)
	}

	// Import CSV (requiere identidad: los productos quedan a nombre del caller)
	importHandler := NewImportHandler(deps.ImporterUC)
	app.Post("/api/import-products", required, importHandler.ImportProducts)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportsUC)
	app.Get("/api/sales-report", reportHandler.SalesReport)
	app.Get("/reports/sales-summary", summaryHandler.ListSalesSummaries)
	app.Get("/reports/purchase-summary", summaryHandler.ListPurchaseSummaries)
	app.Get("/reports/expenses-by-category", summaryHandler.ListExpensesByCategory)
	app.Get("/reports/inventory-levels", snapshotHandler.ListInventoryLevels)
	app.Get("/reports/profit-margins", snapshotHandler.ListProfitMargins)
	app.Get("/reports/sales-trends", snapshotHandler.ListSalesTrends)
}
