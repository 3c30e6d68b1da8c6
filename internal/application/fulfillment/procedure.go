package fulfillment

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// ProcedureUseCase variante que delega todo el flujo de verificación y escritura
// a la rutina add_product_to_warehouse del lado de la base. Es un pase directo
// sin lógica propia; no comparte código con UseCase para no duplicar reglas.
type ProcedureUseCase struct {
	runner ProcedureRunner
}

// NewProcedureUseCase construye la variante por procedimiento almacenado.
func NewProcedureUseCase(runner ProcedureRunner) *ProcedureUseCase {
	return &ProcedureUseCase{runner: runner}
}

// Fulfill relega la ejecución a la rutina de la base y devuelve la identidad
// que esta retorna, o su error tal cual.
func (uc *ProcedureUseCase) Fulfill(ctx context.Context, input Input) (int64, error) {
	if input.ProductID <= 0 || input.WarehouseID <= 0 || input.Amount <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.runner.AddProductToWarehouse(ctx, input.ProductID, input.WarehouseID, input.Amount, input.CreatedAt)
}
