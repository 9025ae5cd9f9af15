package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/siloe-api/internal/application/auth"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	apphttp "github.com/jhoicas/siloe-api/internal/interfaces/http"
)

// ──────────────────────────── fakes y helpers ────────────────────────────

type fakeUserRepo struct {
	byEmail  map[string]*entity.User
	nextID   int64
	failWith error // si no es nil, toda consulta falla con este error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(u *entity.User) error                    { return nil }
func (f *fakeUserRepo) UpdateLastLogin(id int64) error                 { return nil }
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(id int64) error                          { return nil }

type fakeRoleRepo struct {
	roles map[int64]*entity.Role
}

func (f *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) { return f.roles[id], nil }
func (f *fakeRoleRepo) List() ([]*entity.Role, error)          { return nil, nil }

func buildAuthApp(t *testing.T, users *fakeUserRepo) *fiber.App {
	t.Helper()
	roles := &fakeRoleRepo{roles: map[int64]*entity.Role{5: {ID: 5, Name: "shopKeeper"}}}
	uc := auth.NewAuthUseCase(users, roles, auth.Config{
		JWTSecret:  testJWTSecret,
		JWTIssuer:  "siloe-api",
		JWTExp:     1,
		BcryptCost: bcrypt.MinCost,
	})
	h := apphttp.NewAuthHandler(uc)
	app := fiber.New()
	app.Post("/api/auth/register", h.Register)
	app.Post("/api/auth/login", h.Login)
	return app
}

func doPost(t *testing.T, app *fiber.App, path string, payload any) (int, string) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(nethttp.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func seedLoginUser(t *testing.T, users *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Clave.123"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(&entity.User{
		Name:         "Admin",
		Email:        "admin@siloe.com",
		Phone:        "57-3001234567",
		PasswordHash: string(hash),
		RoleID:       5,
		Status:       entity.UserStatusActive,
	}))
}

// ──────────────────────────── Login ────────────────────────────

func TestLoginHandler_EmailDesconocidoRecibe404(t *testing.T) {
	app := buildAuthApp(t, newFakeUserRepo())

	status, body := doPost(t, app, "/api/auth/login", fiber.Map{
		"email": "nadie@siloe.com", "password": "x",
	})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "USER_NOT_FOUND")
}

func TestLoginHandler_PasswordIncorrectoRecibe400(t *testing.T) {
	users := newFakeUserRepo()
	seedLoginUser(t, users)
	app := buildAuthApp(t, users)

	status, body := doPost(t, app, "/api/auth/login", fiber.Map{
		"email": "admin@siloe.com", "password": "otra-clave",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "INVALID_PASSWORD")
}

func TestLoginHandler_ExitosoRecibeToken(t *testing.T) {
	users := newFakeUserRepo()
	seedLoginUser(t, users)
	app := buildAuthApp(t, users)

	status, body := doPost(t, app, "/api/auth/login", fiber.Map{
		"email": "admin@siloe.com", "password": "Clave.123",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"token"`)
	assert.Contains(t, body, "Login exitoso")
}

// Un fallo de infraestructura responde 500 con mensaje fijo: el texto del
// error real (credenciales de DB, hosts) jamás debe llegar al cliente.
func TestLoginHandler_FalloInternoNoFiltraDetalles(t *testing.T) {
	users := newFakeUserRepo()
	users.failWith = errors.New("pq: connection refused to 10.0.0.5")
	app := buildAuthApp(t, users)

	status, body := doPost(t, app, "/api/auth/login", fiber.Map{
		"email": "admin@siloe.com", "password": "Clave.123",
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL")
	assert.Contains(t, body, "error interno del servidor")
	assert.NotContains(t, body, "10.0.0.5")
	assert.NotContains(t, body, "connection refused")
}

// ──────────────────────────── Register ────────────────────────────

func TestRegisterHandler_PhoneRequerido(t *testing.T) {
	app := buildAuthApp(t, newFakeUserRepo())

	status, body := doPost(t, app, "/api/auth/register", fiber.Map{
		"name": "Tendero", "email": "tendero@siloe.com",
		"password": "Clave.123", "role_id": 5,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "VALIDATION")
}

func TestRegisterHandler_EmailOcupadoRecibe400(t *testing.T) {
	users := newFakeUserRepo()
	seedLoginUser(t, users)
	app := buildAuthApp(t, users)

	status, body := doPost(t, app, "/api/auth/register", fiber.Map{
		"name": "Otro", "email": "admin@siloe.com", "phone": "3000000000",
		"password": "Clave.123", "role_id": 5,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "EMAIL_EXISTS")
}

func TestRegisterHandler_Exitoso(t *testing.T) {
	app := buildAuthApp(t, newFakeUserRepo())

	status, body := doPost(t, app, "/api/auth/register", fiber.Map{
		"name": "Tendero", "email": "tendero@siloe.com", "phone": "3000000000",
		"password": "Clave.123", "role_id": 5,
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, body, `"token"`)
}
