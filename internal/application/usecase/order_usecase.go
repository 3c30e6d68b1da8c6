package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// OrderUseCase alta y consulta de pedidos. Los pedidos nacen abiertos
// (fulfilled_at en nil); solo el flujo de despacho los cierra.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create registra un pedido abierto. CreatedAt vacío usa la hora actual.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.ProductID <= 0 || in.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	order := &entity.Order{ProductID: in.ProductID, Amount: in.Amount, CreatedAt: createdAt}
	id, err := uc.repo.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido; nil si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil || order == nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista pedidos con paginación.
func (uc *OrderUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.OrderResponse, error) {
	page.DefaultPage()
	orders, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:          o.ID,
		ProductID:   o.ProductID,
		Amount:      o.Amount,
		CreatedAt:   o.CreatedAt,
		FulfilledAt: o.FulfilledAt,
	}
}
