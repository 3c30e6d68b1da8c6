package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los mapean
// a códigos de estado; el caso de uso los retorna tal cual tras el rollback.
var (
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrProductNotFound       = errors.New("producto no encontrado")
	ErrWarehouseNotFound     = errors.New("bodega no encontrada")
	ErrOrderNotFound         = errors.New("pedido coincidente no encontrado")
	ErrOrderAlreadyFulfilled = errors.New("pedido ya despachado")
	ErrPriceUnavailable      = errors.New("precio del producto no disponible")
)
