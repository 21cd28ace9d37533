package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/estoque-pro/internal/application/auth"
	"github.com/tu-usuario/estoque-pro/internal/application/inventory"
	"github.com/tu-usuario/estoque-pro/internal/application/report"
	"github.com/tu-usuario/estoque-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	MovementExport   *inventory.ExportUseCase
	LowStockReport   *report.LowStockReportUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (protegido). Las rutas fijas van antes que /:id.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/active", productHandler.ListActive)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/search", productHandler.Search)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/activate", productHandler.Activate)
	products.Patch("/:id/deactivate", productHandler.Deactivate)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements (protegido). Las rutas fijas van antes que /:id.
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQuery, deps.MovementExport)
	movements.Post("/in", movementHandler.RegisterEntry)
	movements.Post("/out", movementHandler.RegisterIssue)
	movements.Post("/adjustment", movementHandler.RegisterAdjustment)
	movements.Get("/", movementHandler.List)
	movements.Get("/export", movementHandler.Export)
	movements.Get("/period", movementHandler.ListByPeriod)
	movements.Get("/type/:type", movementHandler.ListByType)
	movements.Get("/product/:productId", movementHandler.ListByProduct)
	movements.Get("/:id", movementHandler.GetByID)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.LowStockReport)
	reports.Get("/low-stock.pdf", reportHandler.LowStockPDF)
}
