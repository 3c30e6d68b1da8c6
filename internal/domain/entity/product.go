package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Price es el precio unitario
// vigente; el flujo de despacho solo lo lee y congela el total calculado en el
// registro de despacho (snapshot, no referencia viva).
type Product struct {
	ID        int64
	Name      string
	Price     decimal.Decimal // precio unitario, >= 0
	CreatedAt time.Time
}
