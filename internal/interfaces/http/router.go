package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/fulfillment"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FulfillUC      *fulfillment.UseCase
	FulfillProcUC  *fulfillment.ProcedureUseCase
	FulfillQueryUC *usecase.FulfillmentQueryUseCase
	ProductUC      *usecase.ProductUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	OrderUC        *usecase.OrderUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)

	// Bodegas
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)

	// Pedidos
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)

	// Despachos (núcleo transaccional + variante por rutina de la base)
	fulfillments := api.Group("/fulfillments")
	fulfillmentHandler := NewFulfillmentHandler(deps.FulfillUC, deps.FulfillProcUC, deps.FulfillQueryUC)
	fulfillments.Post("/", fulfillmentHandler.Fulfill)
	fulfillments.Post("/procedure", fulfillmentHandler.FulfillViaProcedure)
	fulfillments.Get("/", fulfillmentHandler.List)
	fulfillments.Get("/:id", fulfillmentHandler.GetByID)
}
