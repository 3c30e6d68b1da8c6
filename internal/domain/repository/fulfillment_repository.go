package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// FulfillmentRepository define el puerto de persistencia para Fulfillment (DIP).
// Usado dentro de transacciones para garantizar consistencia.
type FulfillmentRepository interface {
	// ExistsForOrder indica si ya hay un despacho registrado para el pedido.
	ExistsForOrder(ctx context.Context, orderID int64) (bool, error)
	// Create inserta el registro y devuelve la identidad generada por la base.
	// Si la fila viola la unicidad por pedido devuelve domain.ErrOrderAlreadyFulfilled.
	Create(ctx context.Context, f *entity.Fulfillment) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Fulfillment, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Fulfillment, error)
}
