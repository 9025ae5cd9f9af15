package http_test

import (
	"context"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/siloe-api/internal/interfaces/http"
	"github.com/jhoicas/siloe-api/pkg/jwt"
)

const testJWTSecret = "secreto-de-prueba"

// ──────────────────────────── helpers ────────────────────────────

// fakeChecker implementa el contrato de verificación de permisos en memoria.
type fakeChecker struct {
	granted map[int64][]string
	err     error
}

func (f *fakeChecker) HasCapability(_ context.Context, roleID int64, code string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, c := range f.granted[roleID] {
		if c == code {
			return true, nil
		}
	}
	return false, nil
}

func buildTestApp(t *testing.T, checker *fakeChecker) *fiber.App {
	t.Helper()
	app := fiber.New()
	protected := app.Group("/", apphttp.AuthMiddleware(testJWTSecret))
	protected.Get("/quien-soy", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role_id": apphttp.GetRoleID(c),
		})
	})
	protected.Get("/solo-tiendas",
		apphttp.RequirePermission("manage-stores", checker),
		func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func tokenFor(t *testing.T, userID, roleID int64) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, userID, "prueba@siloe.com", roleID, "siloe-api", 1)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, bearer string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// ──────────────────────────── AuthMiddleware ────────────────────────────

func TestAuthMiddleware_SinToken(t *testing.T) {
	app := buildTestApp(t, &fakeChecker{})

	status, body := doRequest(t, app, "/quien-soy", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	app := buildTestApp(t, &fakeChecker{})

	status, body := doRequest(t, app, "/quien-soy", "basura")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "INVALID_TOKEN")
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildTestApp(t, &fakeChecker{})
	token, err := jwt.Generate("otro-secreto", 7, "prueba@siloe.com", 1, "siloe-api", 1)
	require.NoError(t, err)

	status, body := doRequest(t, app, "/quien-soy", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "INVALID_TOKEN")
}

func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	app := buildTestApp(t, &fakeChecker{})

	status, body := doRequest(t, app, "/quien-soy", tokenFor(t, 42, 5))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"user_id":42`)
	assert.Contains(t, body, `"role_id":5`)
}

// ──────────────────────────── RequirePermission ────────────────────────────

func TestRequirePermission_RolConPermisoAccede(t *testing.T) {
	checker := &fakeChecker{granted: map[int64][]string{1: {"manage-stores"}}}
	app := buildTestApp(t, checker)

	status, body := doRequest(t, app, "/solo-tiendas", tokenFor(t, 1, 1))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestRequirePermission_RolSinPermisoRecibe403(t *testing.T) {
	checker := &fakeChecker{granted: map[int64][]string{5: {"manage-sales"}}}
	app := buildTestApp(t, checker)

	status, body := doRequest(t, app, "/solo-tiendas", tokenFor(t, 9, 5))
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Contains(t, body, "PERMISSION_DENIED")
}

func TestRequirePermission_FalloDeInfraestructuraRecibe503(t *testing.T) {
	checker := &fakeChecker{err: errors.New("db caída")}
	app := buildTestApp(t, checker)

	status, body := doRequest(t, app, "/solo-tiendas", tokenFor(t, 1, 1))
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Contains(t, body, "PERMISSION_CHECK_FAILED")
}
