package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fulfillment representa la asignación de stock de una bodega a un pedido
// (tabla product_warehouse). Price es el total congelado al momento del
// despacho (precio unitario × cantidad); cambios posteriores del producto no lo
// afectan. Como máximo existe un Fulfillment por pedido.
type Fulfillment struct {
	ID          int64
	WarehouseID int64
	ProductID   int64
	OrderID     int64
	Amount      int
	Price       decimal.Decimal // total = precio unitario × Amount (snapshot)
	Reference   string          // uuid de correlación para trazas y logs
	CreatedAt   time.Time       // momento del despacho, independiente de Order.CreatedAt
}
