package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/fulfillment"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// FulfillmentHandler maneja las peticiones HTTP de despacho de pedidos.
type FulfillmentHandler struct {
	uc      *fulfillment.UseCase
	procUC  *fulfillment.ProcedureUseCase
	queryUC *usecase.FulfillmentQueryUseCase
}

// NewFulfillmentHandler construye el handler.
func NewFulfillmentHandler(uc *fulfillment.UseCase, procUC *fulfillment.ProcedureUseCase, queryUC *usecase.FulfillmentQueryUseCase) *FulfillmentHandler {
	return &FulfillmentHandler{uc: uc, procUC: procUC, queryUC: queryUC}
}

// Fulfill godoc
// @Summary      Despachar un pedido asignando stock de bodega
// @Tags         fulfillments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FulfillmentRequest  true  "id_product, id_warehouse, amount, created_at"
// @Success      201   {object}  dto.FulfillmentCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fulfillments [post]
func (h *FulfillmentHandler) Fulfill(c *fiber.Ctx) error {
	var in dto.FulfillmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Validación de frontera, antes de abrir cualquier transacción
	if in.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser mayor que 0"})
	}
	id, err := h.uc.Fulfill(c.Context(), fulfillment.Input{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Amount:      in.Amount,
		CreatedAt:   in.CreatedAt,
	})
	if err != nil {
		return fulfillmentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FulfillmentCreatedResponse{ID: id})
}

// FulfillViaProcedure godoc
// @Summary      Despachar un pedido delegando en la rutina de la base
// @Tags         fulfillments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FulfillmentRequest  true  "id_product, id_warehouse, amount, created_at"
// @Success      201   {object}  dto.FulfillmentCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/fulfillments/procedure [post]
func (h *FulfillmentHandler) FulfillViaProcedure(c *fiber.Ctx) error {
	var in dto.FulfillmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount debe ser mayor que 0"})
	}
	id, err := h.procUC.Fulfill(c.Context(), fulfillment.Input{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Amount:      in.Amount,
		CreatedAt:   in.CreatedAt,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		// La rutina valida del lado de la base; cualquier fallo llega opaco
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FulfillmentCreatedResponse{ID: id})
}

// GetByID godoc
// @Summary      Obtener despacho por ID
// @Tags         fulfillments
// @Produce      json
// @Param        id   path  int  true  "ID del despacho"
// @Success      200  {object}  dto.FulfillmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fulfillments/{id} [get]
func (h *FulfillmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetByID(c.Context(), int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "despacho no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar despachos
// @Tags         fulfillments
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.FulfillmentResponse
// @Router       /api/fulfillments [get]
func (h *FulfillmentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.queryUC.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"total": len(out), "fulfillments": out})
}

// fulfillmentError mapea los errores de dominio del flujo de despacho a HTTP.
// Los fallos de la base se devuelven opacos (sin detalle del driver).
func fulfillmentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrWarehouseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "WAREHOUSE_NOT_FOUND", Message: "bodega no encontrada"})
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ORDER_NOT_FOUND", Message: "pedido coincidente no encontrado"})
	case errors.Is(err, domain.ErrOrderAlreadyFulfilled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_ALREADY_FULFILLED", Message: "pedido ya despachado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
