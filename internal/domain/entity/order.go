package entity

import "time"

// Order representa un pedido de compra pendiente de despacho.
// FulfilledAt en nil significa pedido abierto; la transición abierto → despachado
// ocurre exactamente una vez, dentro de la misma transacción que crea el Fulfillment.
type Order struct {
	ID          int64
	ProductID   int64
	Amount      int        // cantidad pedida, > 0
	CreatedAt   time.Time
	FulfilledAt *time.Time // nil = abierto
}

// IsOpen indica si el pedido sigue sin despachar.
func (o *Order) IsOpen() bool {
	return o.FulfilledAt == nil
}
