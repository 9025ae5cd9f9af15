package http_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/siloe-api/internal/application/store"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
	apphttp "github.com/jhoicas/siloe-api/internal/interfaces/http"
)

// fakeStoreRepo persistencia de tiendas en memoria para los tests del handler.
type fakeStoreRepo struct {
	stores map[int64]*entity.Store
	users  *fakeUserRepo
	nextID int64
}

func newFakeStoreRepo(users *fakeUserRepo) *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[int64]*entity.Store{}, users: users, nextID: 1}
}

func (f *fakeStoreRepo) Create(s *entity.Store) error {
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *fakeStoreRepo) GetByID(id int64) (*entity.Store, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStoreRepo) FindByNameAndNeighborhood(name, neighborhood string) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.Name == name && s.Neighborhood == neighborhood {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) Update(s *entity.Store) error {
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *fakeStoreRepo) Delete(id int64) error {
	delete(f.stores, id)
	return nil
}

func (f *fakeStoreRepo) GetDetail(id int64) (*repository.StoreDetail, error) {
	s, ok := f.stores[id]
	if !ok {
		return nil, nil
	}
	d := &repository.StoreDetail{
		Store:     *s,
		StoreType: entity.StoreType{ID: s.StoreTypeID, Name: "Tienda de barrio"},
	}
	if s.ManagerID != nil {
		d.Manager, _ = f.users.GetByID(*s.ManagerID)
	}
	return d, nil
}

func (f *fakeStoreRepo) ListByRoute(routeID int64) ([]*repository.StoreDetail, error) {
	return nil, nil
}

func (f *fakeStoreRepo) ListOrphans() ([]*repository.StoreDetail, error) {
	return nil, nil
}

func buildStoreApp(t *testing.T) (*fiber.App, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	stores := newFakeStoreRepo(users)
	uc := store.NewUseCase(stores, users, store.Config{
		DefaultRoleID:          5,
		DefaultManagerPassword: "PanificadoraSiloe.2025",
		BcryptCost:             bcrypt.MinCost,
	})
	h := apphttp.NewStoreHandler(uc)
	app := fiber.New()
	app.Post("/api/stores", h.Create)
	return app, users
}

func storeBody(name, neighborhood string) fiber.Map {
	return fiber.Map{
		"store": fiber.Map{
			"name":          name,
			"address":       "Calle 15 # 3-21",
			"neighborhood":  neighborhood,
			"store_type_id": 1,
		},
	}
}

func TestStoreHandler_CreaTienda(t *testing.T) {
	app, _ := buildStoreApp(t)

	status, body := doPost(t, app, "/api/stores", storeBody("tienda la 15", "san jose norte"))
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Contains(t, body, "TIENDA LA 15")
}

// La tienda duplicada es un error del cliente: 400, no 409.
func TestStoreHandler_DuplicadaRecibe400(t *testing.T) {
	app, _ := buildStoreApp(t)

	status, _ := doPost(t, app, "/api/stores", storeBody("tienda la 15", "san jose norte"))
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doPost(t, app, "/api/stores", storeBody("  TIENDA   la 15 ", "SAN JOSE NORTE"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "STORE_EXISTS")
}

func TestStoreHandler_EmailDeTenderoOcupadoRecibe400(t *testing.T) {
	app, users := buildStoreApp(t)
	require.NoError(t, users.Create(&entity.User{Email: "marta@siloe.com"}))

	in := storeBody("tienda la 15", "san jose norte")
	in["user"] = fiber.Map{"name": "Marta", "email": "marta@siloe.com"}
	status, body := doPost(t, app, "/api/stores", in)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "EMAIL_EXISTS")
}
