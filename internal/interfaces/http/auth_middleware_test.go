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

	apphttp "github.com/jhoicas/printhub-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/printhub-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "printhub-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - Una ruta /admin con RequireAdmin
//   - Un handler dummy que devuelve los locals si pasa los middlewares
func buildTestApp() *fiber.App {
	app := fiber.New()
	echo := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"userId": apphttp.GetUserID(c),
			"role":   apphttp.GetRole(c),
			"tier":   apphttp.GetTier(c),
		})
	}
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), echo)
	app.Get("/admin", apphttp.AuthMiddleware(testJWTSecret), apphttp.RequireAdmin(), echo)
	return app
}

// tokenFor genera un JWT con el rol y tier indicados.
func tokenFor(t *testing.T, role, tier string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, tier, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Token válido: pasa y los locals quedan cargados.
func TestAuthMiddleware_TokenValidoCargaLocals(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", tokenFor(t, "user", "Student"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["userId"], "el userId debe venir del token")
	assert.Equal(t, "user", body["role"])
	assert.Equal(t, "Student", body["tier"], "el tier viaja en el token")
}

// Sin header Authorization: HTTP 401.
func TestAuthMiddleware_SinHeaderRechaza(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Formato inválido (sin prefijo Bearer): HTTP 401.
func TestAuthMiddleware_FormatoInvalidoRechaza(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado con otro secret: HTTP 401.
func TestAuthMiddleware_FirmaInvalidaRechaza(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, "user", "Regular", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp()
	resp := doRequest(t, app, "/protected", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

// Admin accede a ruta de admin: HTTP 200.
func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", tokenFor(t, "admin", "Regular"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")
}

// Usuario normal bloqueado en ruta de admin: HTTP 403.
func TestRequireAdmin_UsuarioBloqueado(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/admin", tokenFor(t, "user", "Institute"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"user no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}
