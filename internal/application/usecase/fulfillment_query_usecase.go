package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// FulfillmentQueryUseCase consultas de solo lectura sobre despachos registrados.
// La escritura vive exclusivamente en el caso de uso transaccional de despacho.
type FulfillmentQueryUseCase struct {
	repo repository.FulfillmentRepository
}

// NewFulfillmentQueryUseCase construye el caso de uso.
func NewFulfillmentQueryUseCase(repo repository.FulfillmentRepository) *FulfillmentQueryUseCase {
	return &FulfillmentQueryUseCase{repo: repo}
}

// GetByID obtiene un despacho; nil si no existe.
func (uc *FulfillmentQueryUseCase) GetByID(ctx context.Context, id int64) (*dto.FulfillmentResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil || f == nil {
		return nil, err
	}
	return toFulfillmentResponse(f), nil
}

// List lista despachos con paginación.
func (uc *FulfillmentQueryUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.FulfillmentResponse, error) {
	page.DefaultPage()
	items, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.FulfillmentResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFulfillmentResponse(f))
	}
	return out, nil
}

func toFulfillmentResponse(f *entity.Fulfillment) *dto.FulfillmentResponse {
	return &dto.FulfillmentResponse{
		ID:          f.ID,
		WarehouseID: f.WarehouseID,
		ProductID:   f.ProductID,
		OrderID:     f.OrderID,
		Amount:      f.Amount,
		Price:       f.Price,
		Reference:   f.Reference,
		CreatedAt:   f.CreatedAt,
	}
}
