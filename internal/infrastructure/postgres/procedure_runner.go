package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-api/internal/application/fulfillment"
)

var _ fulfillment.ProcedureRunner = (*ProcedureRunner)(nil)

// ProcedureRunner invoca la rutina add_product_to_warehouse del lado de la
// base, que ejecuta el flujo completo de verificación y escritura por sí misma.
// Pase directo: sin lógica de negocio en este lado.
type ProcedureRunner struct {
	pool *pgxpool.Pool
}

// NewProcedureRunner construye el adaptador con el pool.
func NewProcedureRunner(pool *pgxpool.Pool) *ProcedureRunner {
	return &ProcedureRunner{pool: pool}
}

// AddProductToWarehouse llama a la rutina y devuelve la identidad que retorna.
func (r *ProcedureRunner) AddProductToWarehouse(ctx context.Context, productID, warehouseID int64, amount int, createdAt time.Time) (int64, error) {
	var id *int64
	err := r.pool.QueryRow(ctx,
		`SELECT add_product_to_warehouse($1, $2, $3, $4)`,
		productID, warehouseID, amount, createdAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("call add_product_to_warehouse: %w", err)
	}
	if id == nil {
		return 0, fmt.Errorf("add_product_to_warehouse: la rutina no devolvió id")
	}
	return *id, nil
}
