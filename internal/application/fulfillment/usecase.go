package fulfillment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UseCase registra el despacho de un pedido de forma transaccional: valida
// producto y bodega, empareja el pedido abierto, lo marca despachado, congela
// el precio total e inserta el registro de despacho. Todo dentro de una sola
// transacción con Commit/Rollback; ningún estado parcial queda visible.
type UseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewUseCase construye el caso de uso. nowFn permite inyectar el reloj en tests;
// con nil usa time.Now.
func NewUseCase(txRunner TxRunner, nowFn func() time.Time) *UseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &UseCase{txRunner: txRunner, now: nowFn}
}

// Input entrada para registrar un despacho. CreatedAt es el timestamp de
// referencia: solo califican pedidos creados estrictamente antes.
type Input struct {
	ProductID   int64
	WarehouseID int64
	Amount      int
	CreatedAt   time.Time
}

// Fulfill ejecuta el flujo completo dentro de una transacción y devuelve la
// identidad del registro de despacho. Errores posibles: ErrInvalidInput,
// ErrProductNotFound, ErrWarehouseNotFound, ErrOrderNotFound,
// ErrOrderAlreadyFulfilled, ErrPriceUnavailable o un error de la base; en todos
// los casos la transacción termina en Rollback y el pedido queda intacto.
// No reintenta: cada fallo se devuelve de inmediato al llamador.
func (uc *UseCase) Fulfill(ctx context.Context, input Input) (int64, error) {
	if input.ProductID <= 0 || input.WarehouseID <= 0 || input.Amount <= 0 {
		return 0, domain.ErrInvalidInput
	}

	var fulfillmentID int64
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		fulfillmentRepo repository.FulfillmentRepository,
	) error {
		// 1. El producto debe existir
		product, err := productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}

		// 2. La bodega debe existir
		warehouse, err := warehouseRepo.GetByID(ctx, input.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return domain.ErrWarehouseNotFound
		}

		// 3. Emparejar pedido: mismo producto, cantidad exacta, creado antes
		// del timestamp de la petición. FindMatch bloquea la fila (FOR UPDATE)
		// para serializar despachos concurrentes del mismo pedido.
		order, err := orderRepo.FindMatch(ctx, input.ProductID, input.Amount, input.CreatedAt)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}

		// 4. Un pedido se despacha a lo sumo una vez
		fulfilled, err := fulfillmentRepo.ExistsForOrder(ctx, order.ID)
		if err != nil {
			return err
		}
		if fulfilled {
			return domain.ErrOrderAlreadyFulfilled
		}

		now := uc.now()

		// 5. Marcar el pedido como despachado (misma tx que el insert)
		if err := orderRepo.MarkFulfilled(ctx, order.ID, now); err != nil {
			return err
		}

		// 6. Releer el precio dentro de la tx (el estado pudo cambiar)
		price, ok, err := productRepo.GetPrice(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrPriceUnavailable
		}

		// 7-8. Congelar el total e insertar el registro de despacho
		total := price.Mul(decimal.NewFromInt(int64(input.Amount)))
		id, err := fulfillmentRepo.Create(ctx, &entity.Fulfillment{
			WarehouseID: input.WarehouseID,
			ProductID:   input.ProductID,
			OrderID:     order.ID,
			Amount:      input.Amount,
			Price:       total,
			Reference:   uuid.New().String(),
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}
		fulfillmentID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return fulfillmentID, nil
}
