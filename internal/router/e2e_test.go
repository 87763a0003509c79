//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventia/internal/config"
	"inventia/internal/infra"
	"inventia/internal/model"
	"inventia/internal/repository"
	"inventia/internal/router"
	"inventia/internal/service"
	"inventia/internal/worker"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Setup ────────────────────────────────────────────────────────────────────

type e2eEnv struct {
	server *httptest.Server
	token  string
}

func setupE2E(t *testing.T) *e2eEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("inventia_test"),
		tcPostgres.WithUsername("inventia"),
		tcPostgres.WithPassword("inventia"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed the operator account
	hash, err := service.HashPassword("e2e-password-123")
	require.NoError(t, err)
	usuarioRepo := repository.NewUsuarioRepository(db)
	require.NoError(t, usuarioRepo.Create(ctx, &model.Usuario{
		Username:      "admin",
		PasswordHash:  hash,
		FechaRegistro: time.Now(),
	}))

	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	dispatcher := worker.NewDispatcher(rdb)

	engine := router.New(cfg, db, rdb, smtpCB, dispatcher)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	// Login
	resp := do(t, srv, http.MethodPost, "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "e2e-password-123"}), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)

	return &e2eEnv{server: srv, token: login.AccessToken}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCicloCompraVenta(t *testing.T) {
	e := setupE2E(t)

	// supplier
	resp := do(t, e.server, http.MethodPost, "/v1/proveedores",
		jsonBody(t, map[string]any{"nombre": "Acme SA", "ruc": "1790012345001"}), e.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var proveedor struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &proveedor)

	// product
	resp = do(t, e.server, http.MethodPost, "/v1/productos",
		jsonBody(t, map[string]any{
			"nombre":        "Widget",
			"precio_compra": "10.00",
			"precio_venta":  "15.00",
			"proveedor_id":  proveedor.ID,
		}), e.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var producto struct {
		ID    string `json:"id"`
		Stock int    `json:"stock"`
	}
	decodeJSON(t, resp, &producto)
	assert.Equal(t, 0, producto.Stock)

	// purchase 20 units at a negotiated price
	resp = do(t, e.server, http.MethodPost, "/v1/compras",
		jsonBody(t, map[string]any{
			"proveedor_id":    proveedor.ID,
			"producto_id":     producto.ID,
			"cantidad":        20,
			"precio_unitario": "9.50",
		}), e.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, e.server, http.MethodGet, "/v1/productos/"+producto.ID+"/stock", nil, e.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stock struct {
		Stock int `json:"stock"`
	}
	decodeJSON(t, resp, &stock)
	assert.Equal(t, 20, stock.Stock)

	// sale of 5 units
	resp = do(t, e.server, http.MethodPost, "/v1/ventas",
		jsonBody(t, map[string]any{"producto_id": producto.ID, "cantidad": 5}), e.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var venta struct {
		ID    string `json:"id"`
		Total string `json:"total"`
	}
	decodeJSON(t, resp, &venta)
	total, err := decimal.NewFromString(venta.Total)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(75)), "total = %s", venta.Total)

	// oversell is refused with 409 and no partial write
	resp = do(t, e.server, http.MethodPost, "/v1/ventas",
		jsonBody(t, map[string]any{"producto_id": producto.ID, "cantidad": 100}), e.token)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, e.server, http.MethodGet, "/v1/productos/"+producto.ID+"/stock", nil, e.token)
	decodeJSON(t, resp, &stock)
	assert.Equal(t, 15, stock.Stock)

	// product with recorded movements cannot be deleted
	resp = do(t, e.server, http.MethodDelete, "/v1/productos/"+producto.ID, nil, e.token)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// deleting the sale returns its units to the derived stock
	resp = do(t, e.server, http.MethodDelete, "/v1/ventas/"+venta.ID, nil, e.token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, e.server, http.MethodGet, "/v1/productos/"+producto.ID+"/stock", nil, e.token)
	decodeJSON(t, resp, &stock)
	assert.Equal(t, 20, stock.Stock)
}

func TestEliminarProveedorConservaCompras(t *testing.T) {
	e := setupE2E(t)

	resp := do(t, e.server, http.MethodPost, "/v1/proveedores",
		jsonBody(t, map[string]any{"nombre": "Acme SA", "ruc": "1790012345001"}), e.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var proveedor struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &proveedor)

	resp = do(t, e.server, http.MethodPost, "/v1/productos",
		jsonBody(t, map[string]any{
			"nombre":        "Widget",
			"precio_compra": "10.00",
			"precio_venta":  "15.00",
		}), e.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var producto struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &producto)

	resp = do(t, e.server, http.MethodPost, "/v1/compras",
		jsonBody(t, map[string]any{
			"proveedor_id":    proveedor.ID,
			"producto_id":     producto.ID,
			"cantidad":        4,
			"precio_unitario": "9.50",
		}), e.token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// supplier deletion is unguarded: the purchase history stays, its
	// proveedor_id dropped to NULL by the schema
	resp = do(t, e.server, http.MethodDelete, "/v1/proveedores/"+proveedor.ID, nil, e.token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, e.server, http.MethodGet, "/v1/compras", nil, e.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var compras []struct {
		Proveedor string `json:"proveedor"`
	}
	decodeJSON(t, resp, &compras)
	require.Len(t, compras, 1)
	assert.Empty(t, compras[0].Proveedor)
}

func TestAutenticacionRequerida(t *testing.T) {
	e := setupE2E(t)

	resp := do(t, e.server, http.MethodGet, "/v1/productos", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, e.server, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestReportesDescargables(t *testing.T) {
	e := setupE2E(t)

	for _, path := range []string{
		"/v1/reportes/ventas.pdf",
		"/v1/reportes/compras.pdf",
		"/v1/reportes/clientes.pdf",
		"/v1/reportes/proveedores.pdf",
		"/v1/reportes/productos.pdf",
	} {
		resp := do(t, e.server, http.MethodGet, path, nil, e.token)
		require.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"), path)
		resp.Body.Close()
	}

	resp := do(t, e.server, http.MethodGet, "/v1/reportes/inventario.xlsx", nil, e.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	resp.Body.Close()
}

func TestDashboard(t *testing.T) {
	e := setupE2E(t)

	resp := do(t, e.server, http.MethodGet, "/v1/dashboard", nil, e.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dash struct {
		TotalProductos int `json:"total_productos"`
		TotalUsuarios  int `json:"total_usuarios"`
	}
	decodeJSON(t, resp, &dash)
	assert.Equal(t, 1, dash.TotalUsuarios)
}
