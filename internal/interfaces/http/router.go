package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	ItemUC      *inventory.ItemUseCase
	TransferUC  *inventory.TransferUseCase
	BulkUC      *inventory.BulkTransferUseCase
	ActivityUC  *usecase.ActivityUseCase
	ReportUC    *report.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
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

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.Get)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)
	warehouses.Post("/:id/deactivate", warehouseHandler.Deactivate)
	warehouses.Get("/:id/capacity", warehouseHandler.Capacity)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id", itemHandler.Get)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Post("/:id/adjust", itemHandler.Adjust)

	// Transfers (protegido)
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC, deps.BulkUC)
	transfers.Post("/", transferHandler.Transfer)
	transfers.Post("/bulk", transferHandler.BulkTransfer)

	// Activity log (protegido, solo lectura)
	activity := protected.Group("/activity")
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activity.Get("/", activityHandler.List)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/activity.xlsx", reportHandler.ActivityXLSX)
	reports.Get("/stock.xlsx", reportHandler.StockXLSX)
	reports.Get("/stock.pdf", reportHandler.StockPDF)
}
