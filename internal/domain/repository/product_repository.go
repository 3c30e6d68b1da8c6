package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID/GetPrice devuelven nil/false sin error cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetPrice relee el precio unitario dentro de la transacción en curso
	// (snapshot del paso de cálculo, separado de GetByID a propósito).
	GetPrice(ctx context.Context, id int64) (decimal.Decimal, bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
