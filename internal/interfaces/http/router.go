package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/purchasing"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	LocationUC     *usecase.LocationUseCase
	SupplierUC     *usecase.SupplierUseCase
	Ledger         *inventory.StockLedgerUseCase
	InventoryQuery *inventory.InventoryQueryUseCase
	SnapshotReport *inventory.SnapshotReportUseCase
	OrderUC        *purchasing.PurchaseOrderUseCase
	ReceiveUC      *purchasing.ReceiveOrderUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
	AdminSecret    string
}

// Router registra las rutas de la API. Lecturas: cualquier rol
// autenticado. Mutaciones: admin u operator.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	mutator := RequireRole(entity.RoleAdmin, entity.RoleOperator)

	// Auth (register/login públicos; register exige X-Admin-Secret)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.AdminSecret)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", mutator, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", mutator, locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", mutator, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Inventory ledger (protegido; mutaciones solo admin/operator)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.InventoryQuery, deps.SnapshotReport)
	invGroup.Post("/adjust", mutator, inventoryHandler.Adjust)
	invGroup.Post("/move", mutator, inventoryHandler.Move)
	invGroup.Post("/reserve", mutator, inventoryHandler.Reserve)
	invGroup.Post("/release", mutator, inventoryHandler.Release)
	invGroup.Post("/ship", mutator, inventoryHandler.Ship)
	invGroup.Get("/snapshot", inventoryHandler.Snapshot)
	invGroup.Get("/snapshot.pdf", inventoryHandler.SnapshotPDF)
	invGroup.Get("/movements", inventoryHandler.Movements)

	// Purchase orders (protegido; mutaciones solo admin/operator)
	purchase := protected.Group("/purchase")
	purchaseHandler := NewPurchaseHandler(deps.OrderUC, deps.ReceiveUC)
	purchase.Post("/orders", mutator, purchaseHandler.CreateOrder)
	purchase.Get("/orders", purchaseHandler.ListOrders)
	purchase.Get("/orders/:id", purchaseHandler.GetOrder)
	purchase.Post("/orders/:id/lines", mutator, purchaseHandler.AddLine)
	purchase.Post("/orders/:id/cancel", mutator, purchaseHandler.CancelOrder)
	purchase.Post("/orders/:id/receive", mutator, purchaseHandler.ReceiveOrder)
}
