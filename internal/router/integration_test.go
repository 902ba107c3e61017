//go:build integration

package router

// Integration tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tramitesbackend/internal/config"
	"tramitesbackend/internal/infra"
	"tramitesbackend/internal/service"

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

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("tramites_test"),
		tcPostgres.WithUsername("tramites"),
		tcPostgres.WithPassword("tramites"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		PresenceTTLSeconds: 60,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	hash, err := service.HashPassword("clave-e2e")
	require.NoError(t, err)
	require.NoError(t, db.Exec(`INSERT INTO usuarios (username, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ('admin', 'admin@e2e.test', ?, 'admin', true, NOW(), NOW())
		ON CONFLICT DO NOTHING`, hash).Error)

	r := New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/api/token/",
		jsonBody(t, map[string]string{"username": "admin", "password": "clave-e2e"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var tokens struct {
		Access string `json:"access"`
	}
	decodeJSON(t, loginResp, &tokens)
	require.NotEmpty(t, tokens.Access)

	return &testEnv{server: srv, token: tokens.Access}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestIntegracion_CicloCargoNoRegistrado(t *testing.T) {
	env := setupTestEnv(t)

	// Cliente
	cliResp := do(t, env.server, "POST", "/api/clientes/create/",
		jsonBody(t, map[string]any{"nombre": "Transportes Ruiz"}), env.token)
	require.Equal(t, http.StatusCreated, cliResp.StatusCode)
	var cli struct {
		ID string `json:"id"`
	}
	decodeJSON(t, cliResp, &cli)

	// Tarjeta con recargo activo
	tarResp := do(t, env.server, "POST", "/api/tarjetas/create/",
		jsonBody(t, map[string]any{"numero": "4111222233334444", "titular": "María Pérez", "cuatro_por_mil": "1"}), env.token)
	require.Equal(t, http.StatusCreated, tarResp.StatusCode)
	var tar struct {
		ID string `json:"id"`
	}
	decodeJSON(t, tarResp, &tar)

	// Número duplicado rechazado
	dupResp := do(t, env.server, "POST", "/api/tarjetas/create/",
		jsonBody(t, map[string]any{"numero": "4111222233334444", "titular": "Otro"}), env.token)
	assert.Equal(t, http.StatusBadRequest, dupResp.StatusCode)
	dupResp.Body.Close()

	// Cargo: el recargo se calcula en el servidor
	cargoResp := do(t, env.server, "POST", "/api/cargos_no_registrados/create/",
		jsonBody(t, map[string]any{
			"cliente":     cli.ID,
			"tarjeta":     tar.ID,
			"observacion": "Pago matrícula",
			"valor":       "500000",
			"fecha":       "2026-02-10",
		}), env.token)
	require.Equal(t, http.StatusCreated, cargoResp.StatusCode)
	var cargo struct {
		ID           string `json:"id"`
		CuatroPorMil string `json:"cuatro_por_mil"`
		Total        string `json:"total"`
	}
	decodeJSON(t, cargoResp, &cargo)
	assert.Equal(t, "2000", cargo.CuatroPorMil)
	assert.Equal(t, "502000", cargo.Total)

	// Soft delete → desaparece del listado normal
	delResp := do(t, env.server, "DELETE", fmt.Sprintf("/api/cargos_no_registrados/%s/delete/", cargo.ID), nil, env.token)
	require.Equal(t, http.StatusNoContent, delResp.StatusCode)
	delResp.Body.Close()

	listResp := do(t, env.server, "GET", "/api/cargos_no_registrados/list/", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var lista struct {
		Count int `json:"count"`
	}
	decodeJSON(t, listResp, &lista)
	assert.Equal(t, 0, lista.Count)

	// Con include_deleted=1 vuelve a aparecer
	listResp = do(t, env.server, "GET", "/api/cargos_no_registrados/list/?include_deleted=1", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	decodeJSON(t, listResp, &lista)
	assert.Equal(t, 1, lista.Count)

	// Restore
	restResp := do(t, env.server, "POST", fmt.Sprintf("/api/cargos_no_registrados/%s/restore/", cargo.ID), nil, env.token)
	require.Equal(t, http.StatusOK, restResp.StatusCode)
	restResp.Body.Close()

	// El historial acumula creado + eliminado + actualizado (restore)
	histResp := do(t, env.server, "GET", fmt.Sprintf("/api/cargos_no_registrados/%s/history/", cargo.ID), nil, env.token)
	require.Equal(t, http.StatusOK, histResp.StatusCode)
	var hist struct {
		Count   int `json:"count"`
		Results []struct {
			Tipo string `json:"tipo"`
		} `json:"results"`
	}
	decodeJSON(t, histResp, &hist)
	assert.Equal(t, 3, hist.Count)
}

func TestIntegracion_FlujoCotizador(t *testing.T) {
	env := setupTestEnv(t)

	cliResp := do(t, env.server, "POST", "/api/clientes/create/",
		jsonBody(t, map[string]any{"nombre": "Transportes Ruiz"}), env.token)
	require.Equal(t, http.StatusCreated, cliResp.StatusCode)
	var cli struct {
		ID string `json:"id"`
	}
	decodeJSON(t, cliResp, &cli)

	precioResp := do(t, env.server, "POST", fmt.Sprintf("/api/clientes/%s/precios/add/", cli.ID),
		jsonBody(t, map[string]any{"descripcion": "Traspaso moto", "precio": "90000"}), env.token)
	require.Equal(t, http.StatusCreated, precioResp.StatusCode)
	var precio struct {
		ID string `json:"id"`
	}
	decodeJSON(t, precioResp, &precio)

	etiResp := do(t, env.server, "POST", "/api/etiquetas/create/",
		jsonBody(t, map[string]any{"nombre": "Traspaso"}), env.token)
	require.Equal(t, http.StatusCreated, etiResp.StatusCode)
	var eti struct {
		ID string `json:"id"`
	}
	decodeJSON(t, etiResp, &eti)

	cotResp := do(t, env.server, "POST", "/api/cotizador/create/",
		jsonBody(t, map[string]any{
			"cliente":          cli.ID,
			"etiqueta":         eti.ID,
			"precio_cliente":   precio.ID,
			"descripcion":      "Traspaso moto AKT",
			"precio_lay":       "90000",
			"comision":         "10000",
			"placa":            "ABC123",
			"clindraje":        "125",
			"modelo":           "2024",
			"chasis":           "9FSKT01258",
			"numero_documento": "1020304050",
			"nombre_completo":  "Carlos Gómez",
			"telefono":         "3001234567",
			"correo":           "carlos@example.com",
			"direccion":        "Cra 10 # 20-30",
		}), env.token)
	require.Equal(t, http.StatusCreated, cotResp.StatusCode)
	var cot struct {
		ID              string `json:"id"`
		CotizadorEstado string `json:"cotizador_estado"`
	}
	decodeJSON(t, cotResp, &cot)
	assert.Equal(t, "1", cot.CotizadorEstado)

	// Avanza a trámite
	avResp := do(t, env.server, "POST", fmt.Sprintf("/api/cotizador/%s/cambiar-estado/", cot.ID),
		jsonBody(t, map[string]string{"paso": "tramite"}), env.token)
	require.Equal(t, http.StatusOK, avResp.StatusCode)
	var cambio struct {
		Message   string `json:"message"`
		Cotizador struct {
			TramiteEstado string `json:"tramite_estado"`
		} `json:"cotizador"`
	}
	decodeJSON(t, avResp, &cambio)
	assert.Equal(t, "Estado actualizado a Trámite correctamente", cambio.Message)
	assert.Equal(t, "1", cambio.Cotizador.TramiteEstado)

	// Saltarse una etapa falla
	saltoResp := do(t, env.server, "POST", fmt.Sprintf("/api/cotizador/%s/cambiar-estado/", cot.ID),
		jsonBody(t, map[string]string{"paso": "cargaro"}), env.token)
	assert.Equal(t, http.StatusBadRequest, saltoResp.StatusCode)
	saltoResp.Body.Close()

	// Revertir a cotizador
	revResp := do(t, env.server, "POST", fmt.Sprintf("/api/cotizador/%s/revertir-estado/", cot.ID),
		jsonBody(t, map[string]string{"paso": "cotizador"}), env.token)
	require.Equal(t, http.StatusOK, revResp.StatusCode)
	revResp.Body.Close()

	// PDF
	pdfResp := do(t, env.server, "GET", fmt.Sprintf("/api/cotizador/%s/pdf/", cot.ID), nil, env.token)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	pdfResp.Body.Close()
}

func TestIntegracion_PresenciaDeUsuarios(t *testing.T) {
	env := setupTestEnv(t)

	hbResp := do(t, env.server, "POST", "/api/user/heartbeat/", nil, env.token)
	require.Equal(t, http.StatusOK, hbResp.StatusCode)
	hbResp.Body.Close()

	onResp := do(t, env.server, "GET", "/api/user/online/", nil, env.token)
	require.Equal(t, http.StatusOK, onResp.StatusCode)
	var online struct {
		Online []string `json:"online"`
	}
	decodeJSON(t, onResp, &online)
	assert.Len(t, online.Online, 1)
}

func TestIntegracion_RutasProtegidas(t *testing.T) {
	env := setupTestEnv(t)

	// Sin token
	resp := do(t, env.server, "GET", "/api/clientes/list/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Health es público
	resp = do(t, env.server, "GET", "/health", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
