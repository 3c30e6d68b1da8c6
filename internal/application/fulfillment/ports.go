package fulfillment

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el flujo de despacho:
// Commit si fn devuelve nil, Rollback en cualquier otro caso (incluida la
// cancelación del contexto).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		fulfillmentRepo repository.FulfillmentRepository,
	) error) error
}

// ProcedureRunner puerto para la variante que delega todo el flujo a la rutina
// add_product_to_warehouse del lado de la base. Devuelve la identidad generada.
type ProcedureRunner interface {
	AddProductToWarehouse(ctx context.Context, productID, warehouseID int64, amount int, createdAt time.Time) (int64, error)
}
