package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID        int64           `json:"id_product"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WarehouseResponse representación de una bodega.
type WarehouseResponse struct {
	ID        int64     `json:"id_warehouse"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	ProductID int64     `json:"id_product"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse representación de un pedido.
type OrderResponse struct {
	ID          int64      `json:"id_order"`
	ProductID   int64      `json:"id_product"`
	Amount      int        `json:"amount"`
	CreatedAt   time.Time  `json:"created_at"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
}
