package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FulfillmentRequest body para POST /api/fulfillments (y su variante /procedure).
// CreatedAt es el timestamp de referencia del pedido: solo califican pedidos
// creados estrictamente antes.
type FulfillmentRequest struct {
	ProductID   int64     `json:"id_product"`
	WarehouseID int64     `json:"id_warehouse"`
	Amount      int       `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// FulfillmentCreatedResponse respuesta de un despacho exitoso.
type FulfillmentCreatedResponse struct {
	ID int64 `json:"id_product_warehouse"`
}

// FulfillmentResponse representación completa de un despacho registrado.
type FulfillmentResponse struct {
	ID          int64           `json:"id_product_warehouse"`
	WarehouseID int64           `json:"id_warehouse"`
	ProductID   int64           `json:"id_product"`
	OrderID     int64           `json:"id_order"`
	Amount      int             `json:"amount"`
	Price       decimal.Decimal `json:"price"`
	Reference   string          `json:"reference"`
	CreatedAt   time.Time       `json:"created_at"`
}
