package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/fulfillment"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: un TxRunner guionado que o falla con el error indicado o
// ejecuta fn contra repos mínimos que completan el flujo con identidades fijas.
// ──────────────────────────────────────────────────────────────────────────────

type scriptedRunner struct {
	err   error
	id    int64
	calls int
}

type okProductRepo struct{}

func (okProductRepo) Create(context.Context, *entity.Product) (int64, error) { return 0, nil }
func (okProductRepo) GetByID(context.Context, int64) (*entity.Product, error) {
	return &entity.Product{ID: 1, Name: "P1", Price: decimal.RequireFromString("10.00")}, nil
}
func (okProductRepo) GetPrice(context.Context, int64) (decimal.Decimal, bool, error) {
	return decimal.RequireFromString("10.00"), true, nil
}
func (okProductRepo) List(context.Context, int, int) ([]*entity.Product, error) { return nil, nil }

type okWarehouseRepo struct{}

func (okWarehouseRepo) Create(context.Context, *entity.Warehouse) (int64, error) { return 0, nil }
func (okWarehouseRepo) GetByID(context.Context, int64) (*entity.Warehouse, error) {
	return &entity.Warehouse{ID: 1, Name: "W1"}, nil
}
func (okWarehouseRepo) List(context.Context, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}

type okOrderRepo struct{}

func (okOrderRepo) Create(context.Context, *entity.Order) (int64, error)  { return 0, nil }
func (okOrderRepo) GetByID(context.Context, int64) (*entity.Order, error) { return nil, nil }
func (okOrderRepo) FindMatch(context.Context, int64, int, time.Time) (*entity.Order, error) {
	return &entity.Order{ID: 7, ProductID: 1, Amount: 5, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
}
func (okOrderRepo) MarkFulfilled(context.Context, int64, time.Time) error { return nil }
func (okOrderRepo) List(context.Context, int, int) ([]*entity.Order, error) {
	return nil, nil
}

type okFulfillmentRepo struct{ id int64 }

func (okFulfillmentRepo) ExistsForOrder(context.Context, int64) (bool, error) { return false, nil }
func (r okFulfillmentRepo) Create(_ context.Context, f *entity.Fulfillment) (int64, error) {
	return r.id, nil
}
func (okFulfillmentRepo) GetByID(context.Context, int64) (*entity.Fulfillment, error) {
	return nil, nil
}
func (okFulfillmentRepo) List(context.Context, int, int) ([]*entity.Fulfillment, error) {
	return nil, nil
}

func (r *scriptedRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	fulfillmentRepo repository.FulfillmentRepository,
) error) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	return fn(okProductRepo{}, okWarehouseRepo{}, okOrderRepo{}, okFulfillmentRepo{id: r.id})
}

type scriptedProcRunner struct {
	id  int64
	err error
}

func (r *scriptedProcRunner) AddProductToWarehouse(context.Context, int64, int64, int, time.Time) (int64, error) {
	return r.id, r.err
}

func buildApp(runner *scriptedRunner, procRunner *scriptedProcRunner) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewFulfillmentHandler(
		fulfillment.NewUseCase(runner, nil),
		fulfillment.NewProcedureUseCase(procRunner),
		nil, // las consultas no se ejercitan en estos tests
	)
	app.Post("/api/fulfillments", handler.Fulfill)
	app.Post("/api/fulfillments/procedure", handler.FulfillViaProcedure)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func validBody() map[string]any {
	return map[string]any{
		"id_product":   1,
		"id_warehouse": 1,
		"amount":       5,
		"created_at":   "2024-01-02T00:00:00Z",
	}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/fulfillments
// ──────────────────────────────────────────────────────────────────────────────

func TestFulfillHandler_Exitoso_Retorna201ConIdentidad(t *testing.T) {
	app := buildApp(&scriptedRunner{id: 55}, &scriptedProcRunner{})

	resp := postJSON(t, app, "/api/fulfillments", validBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(55), body["id_product_warehouse"])
}

func TestFulfillHandler_CuerpoInvalido_Retorna400(t *testing.T) {
	runner := &scriptedRunner{}
	app := buildApp(runner, &scriptedProcRunner{})

	req := httptest.NewRequest(http.MethodPost, "/api/fulfillments", bytes.NewReader([]byte("{no json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, runner.calls, "un cuerpo inválido no debe abrir transacción")
}

func TestFulfillHandler_AmountNoPositivo_Retorna400SinTransaccion(t *testing.T) {
	runner := &scriptedRunner{}
	app := buildApp(runner, &scriptedProcRunner{})

	body := validBody()
	body["amount"] = 0
	resp := postJSON(t, app, "/api/fulfillments", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeBody(t, resp)["code"])
	assert.Zero(t, runner.calls, "la validación de frontera va antes de la transacción")
}

func TestFulfillHandler_MapeoDeErroresDeDominio(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"producto", domain.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"bodega", domain.ErrWarehouseNotFound, http.StatusNotFound, "WAREHOUSE_NOT_FOUND"},
		{"pedido", domain.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"conflicto", domain.ErrOrderAlreadyFulfilled, http.StatusConflict, "ORDER_ALREADY_FULFILLED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := buildApp(&scriptedRunner{err: tc.err}, &scriptedProcRunner{})
			resp := postJSON(t, app, "/api/fulfillments", validBody())
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantCode, decodeBody(t, resp)["code"])
		})
	}
}

// Un fallo del store llega como 500 con mensaje genérico, sin detalle del driver.
func TestFulfillHandler_ErrorDeStore_Retorna500Opaco(t *testing.T) {
	app := buildApp(&scriptedRunner{err: io.ErrUnexpectedEOF}, &scriptedProcRunner{})

	resp := postJSON(t, app, "/api/fulfillments", validBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "INTERNAL", body["code"])
	assert.NotContains(t, body["message"], "EOF", "no debe filtrar diagnóstico del store")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/fulfillments/procedure
// ──────────────────────────────────────────────────────────────────────────────

func TestProcedureHandler_Exitoso_Retorna201(t *testing.T) {
	app := buildApp(&scriptedRunner{}, &scriptedProcRunner{id: 77})

	resp := postJSON(t, app, "/api/fulfillments/procedure", validBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(77), decodeBody(t, resp)["id_product_warehouse"])
}

func TestProcedureHandler_FalloDeRutina_Retorna500(t *testing.T) {
	app := buildApp(&scriptedRunner{}, &scriptedProcRunner{err: io.ErrUnexpectedEOF})

	resp := postJSON(t, app, "/api/fulfillments/procedure", validBody())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestProcedureHandler_AmountNoPositivo_Retorna400(t *testing.T) {
	app := buildApp(&scriptedRunner{}, &scriptedProcRunner{id: 77})

	body := validBody()
	body["amount"] = -1
	resp := postJSON(t, app, "/api/fulfillments/procedure", body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
