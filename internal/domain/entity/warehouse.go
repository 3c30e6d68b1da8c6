package entity

import "time"

// Warehouse representa una bodega física donde se asigna stock a los pedidos.
// El flujo de despacho solo verifica su existencia.
type Warehouse struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt time.Time
}
