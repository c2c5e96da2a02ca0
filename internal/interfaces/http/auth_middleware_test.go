package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/validador-ec/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/validador-ec/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testClientID  = "erp-contable"
	testIssuer    = "validador-ec-test"
	testExpMin    = 60
)

// buildScopedApp construye una aplicación Fiber mínima con AuthMiddleware + RequireScope
// y un handler dummy que devuelve 200 si pasa los middlewares.
func buildScopedApp(secret, scope string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(secret),
		apphttp.RequireScope(secret, scope),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "client_id": apphttp.GetClientID(c)})
		},
	)
	return app
}

// bearer genera un JWT con los scopes indicados.
func bearer(t *testing.T, scopes ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testClientID, scopes, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireScope_ConScopeAccede(t *testing.T) {
	app := buildScopedApp(testJWTSecret, pkgjwt.ScopeBatch)
	resp := doGet(t, app, bearer(t, pkgjwt.ScopeBatch, pkgjwt.ScopeReport))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testClientID, body["client_id"])
}

func TestRequireScope_SinScopeRetorna403(t *testing.T) {
	app := buildScopedApp(testJWTSecret, pkgjwt.ScopeVoucher)
	resp := doGet(t, app, bearer(t, pkgjwt.ScopeBatch))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	resp := doGet(t, buildScopedApp(testJWTSecret, pkgjwt.ScopeBatch), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalidoRetorna401(t *testing.T) {
	app := buildScopedApp(testJWTSecret, pkgjwt.ScopeBatch)

	for _, h := range []string{"Bearer token.invalido.aqui", "Basic abc", "Bearer "} {
		resp := doGet(t, app, h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_TokenExpiradoRetorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testClientID, []string{pkgjwt.ScopeBatch}, testIssuer, -1)
	require.NoError(t, err)

	resp := doGet(t, buildScopedApp(testJWTSecret, pkgjwt.ScopeBatch), "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_DeshabilitadoSinSecret(t *testing.T) {
	resp := doGet(t, buildScopedApp("", pkgjwt.ScopeBatch), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "sin JWT_SECRET las rutas quedan abiertas")
}
