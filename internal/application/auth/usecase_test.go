package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/siloe-api/internal/application/auth"
	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/pkg/jwt"
)

const testJWTSecret = "secreto-de-prueba"

// ──────────────────────────── fakes en memoria ────────────────────────────

type fakeUserRepo struct {
	byEmail    map[string]*entity.User
	nextID     int64
	lastLogins []int64
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
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(id int64) error {
	f.lastLogins = append(f.lastLogins, id)
	return nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(id int64) error                          { return nil }

type fakeRoleRepo struct {
	roles map[int64]*entity.Role
}

func (f *fakeRoleRepo) GetByID(id int64) (*entity.Role, error) { return f.roles[id], nil }
func (f *fakeRoleRepo) List() ([]*entity.Role, error)          { return nil, nil }

type fakePermRepo struct {
	codes map[int64][]string
}

func (f *fakePermRepo) ActiveCodesByRole(roleID int64) ([]string, error) {
	return f.codes[roleID], nil
}

func testConfig() auth.Config {
	return auth.Config{
		JWTSecret:  testJWTSecret,
		JWTIssuer:  "siloe-api",
		JWTExp:     8,
		BcryptCost: bcrypt.MinCost, // cost mínimo para que los tests no sean lentos
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string, roleID int64) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		Name:         "Usuario Prueba",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       roleID,
		Status:       entity.UserStatusActive,
	}
	require.NoError(t, repo.Create(u))
	return u
}

// ──────────────────────────── Login ────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "admin@siloe.com", "Clave.123", 1)
	uc := auth.NewAuthUseCase(users, &fakeRoleRepo{}, testConfig())

	out, err := uc.Login(dto.LoginRequest{Email: "admin@siloe.com", Password: "Clave.123"})
	require.NoError(t, err)

	assert.Equal(t, "Login exitoso", out.Message)
	assert.Equal(t, "admin@siloe.com", out.User.Email)
	assert.NotEmpty(t, out.User.Status)

	// El token debe llevar la identidad completa
	claims, err := jwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, "admin@siloe.com", claims.Email)
	assert.Equal(t, int64(1), claims.RoleID)

	// Debe registrar el último login
	assert.Equal(t, []int64{out.User.ID}, users.lastLogins)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), &fakeRoleRepo{}, testConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@siloe.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "admin@siloe.com", "Clave.123", 1)
	uc := auth.NewAuthUseCase(users, &fakeRoleRepo{}, testConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "admin@siloe.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	assert.Empty(t, users.lastLogins, "un login fallido no debe tocar last_login")
}

// ──────────────────────────── Register ────────────────────────────

func TestRegister_CreaUsuarioYEmiteToken(t *testing.T) {
	users := newFakeUserRepo()
	roles := &fakeRoleRepo{roles: map[int64]*entity.Role{5: {ID: 5, Name: "shopKeeper"}}}
	uc := auth.NewAuthUseCase(users, roles, testConfig())

	out, err := uc.Register(dto.RegisterRequest{
		Name:     "Tendero Nuevo",
		Email:    "tendero@siloe.com",
		Phone:    "57-3001234567",
		Password: "Clave.123",
		RoleID:   5,
	})
	require.NoError(t, err)

	assert.NotZero(t, out.User.ID)
	assert.Equal(t, entity.UserStatusActive, out.User.Status)

	// El password queda hasheado, nunca plano
	stored := users.byEmail["tendero@siloe.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Clave.123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Clave.123")))

	claims, err := jwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.RoleID)
}

func TestRegister_RolInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), &fakeRoleRepo{}, testConfig())

	_, err := uc.Register(dto.RegisterRequest{Email: "x@siloe.com", Password: "x", RoleID: 99})
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "tendero@siloe.com", "Clave.123", 5)
	roles := &fakeRoleRepo{roles: map[int64]*entity.Role{5: {ID: 5, Name: "shopKeeper"}}}
	uc := auth.NewAuthUseCase(users, roles, testConfig())

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "tendero@siloe.com",
		Password: "Clave.123",
		RoleID:   5,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────── PermissionService ────────────────────────────

func TestHasCapability_Membresia(t *testing.T) {
	perms := &fakePermRepo{codes: map[int64][]string{
		1: {"manage-users", "manage-stores"},
		5: {"manage-sales"},
	}}
	svc := auth.NewPermissionService(perms)
	ctx := context.Background()

	ok, err := svc.HasCapability(ctx, 1, "manage-stores")
	require.NoError(t, err)
	assert.True(t, ok)

	// La ausencia del permiso es un "no" limpio, no un error
	ok, err = svc.HasCapability(ctx, 5, "manage-stores")
	require.NoError(t, err)
	assert.False(t, ok)

	// Rol sin filas tampoco es error
	ok, err = svc.HasCapability(ctx, 99, "manage-sales")
	require.NoError(t, err)
	assert.False(t, ok)
}
