package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.FulfillmentRepository = (*FulfillmentRepo)(nil)

// FulfillmentRepo implementación del puerto FulfillmentRepository sobre
// PostgreSQL (usable con pool o tx).
type FulfillmentRepo struct {
	q Querier
}

// NewFulfillmentRepository construye el adaptador de persistencia para
// despachos. Pasar pool o tx (Querier).
func NewFulfillmentRepository(q Querier) *FulfillmentRepo {
	return &FulfillmentRepo{q: q}
}

// ExistsForOrder indica si ya hay un despacho registrado para el pedido.
func (r *FulfillmentRepo) ExistsForOrder(ctx context.Context, orderID int64) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx, `SELECT 1 FROM fulfillments WHERE order_id = $1`, orderID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check fulfillment for order: %w", err)
	}
	return true, nil
}

// Create inserta el registro de despacho y devuelve la identidad generada.
// El índice único sobre order_id convierte la carrera check-then-act en un
// conflicto 23505 que se mapea a ErrOrderAlreadyFulfilled.
func (r *FulfillmentRepo) Create(ctx context.Context, f *entity.Fulfillment) (int64, error) {
	query := `
		INSERT INTO fulfillments (warehouse_id, product_id, order_id, amount, price, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		f.WarehouseID, f.ProductID, f.OrderID, f.Amount, f.Price, f.Reference, f.CreatedAt,
	).Scan(&f.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrOrderAlreadyFulfilled
		}
		return 0, fmt.Errorf("insert fulfillment: %w", err)
	}
	return f.ID, nil
}

// GetByID obtiene un despacho por ID; nil si no existe.
func (r *FulfillmentRepo) GetByID(ctx context.Context, id int64) (*entity.Fulfillment, error) {
	query := `
		SELECT id, warehouse_id, product_id, order_id, amount, price, reference, created_at
		FROM fulfillments WHERE id = $1`
	var f entity.Fulfillment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.WarehouseID, &f.ProductID, &f.OrderID, &f.Amount, &f.Price, &f.Reference, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fulfillment: %w", err)
	}
	return &f, nil
}

// List lista despachos con paginación.
func (r *FulfillmentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Fulfillment, error) {
	query := `
		SELECT id, warehouse_id, product_id, order_id, amount, price, reference, created_at
		FROM fulfillments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fulfillments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fulfillment
	for rows.Next() {
		var f entity.Fulfillment
		if err := rows.Scan(&f.ID, &f.WarehouseID, &f.ProductID, &f.OrderID, &f.Amount, &f.Price, &f.Reference, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan fulfillment: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
