package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	// FindMatch busca el pedido con el producto indicado, cantidad exacta y
	// created_at estrictamente anterior a before. Si varios califican devuelve
	// el más antiguo (created_at, luego id). Dentro de una transacción bloquea
	// la fila (SELECT FOR UPDATE) para serializar despachos concurrentes.
	// Devuelve nil sin error si ninguno califica.
	FindMatch(ctx context.Context, productID int64, amount int, before time.Time) (*entity.Order, error)
	// MarkFulfilled fija fulfilled_at del pedido.
	MarkFulfilled(ctx context.Context, orderID int64, at time.Time) error
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
}
