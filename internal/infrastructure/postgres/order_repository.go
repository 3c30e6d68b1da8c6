package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
// Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido abierto y devuelve la identidad generada.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) (int64, error) {
	query := `
		INSERT INTO orders (product_id, amount, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, order.ProductID, order.Amount, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	return order.ID, nil
}

// GetByID obtiene un pedido por ID; nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `
		SELECT id, product_id, amount, created_at, fulfilled_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// FindMatch busca el pedido más antiguo con producto y cantidad exactos creado
// estrictamente antes de before, y bloquea la fila (SELECT FOR UPDATE) para que
// dos despachos concurrentes del mismo pedido queden serializados. Devuelve nil
// si ninguno califica.
func (r *OrderRepo) FindMatch(ctx context.Context, productID int64, amount int, before time.Time) (*entity.Order, error) {
	query := `
		SELECT id, product_id, amount, created_at, fulfilled_at
		FROM orders
		WHERE product_id = $1 AND amount = $2 AND created_at < $3
		ORDER BY created_at ASC, id ASC
		LIMIT 1
		FOR UPDATE`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, productID, amount, before).Scan(
		&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find matching order: %w", err)
	}
	return &o, nil
}

// MarkFulfilled fija fulfilled_at del pedido (transición abierto → despachado).
func (r *OrderRepo) MarkFulfilled(ctx context.Context, orderID int64, at time.Time) error {
	cmd, err := r.q.Exec(ctx, `UPDATE orders SET fulfilled_at = $2 WHERE id = $1`, orderID, at)
	if err != nil {
		return fmt.Errorf("mark order fulfilled: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("mark order fulfilled: pedido %d no existe", orderID)
	}
	return nil
}

// List lista pedidos con paginación.
func (r *OrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, product_id, amount, created_at, fulfilled_at
		FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
