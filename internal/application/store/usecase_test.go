package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/application/store"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// ──────────────────────────── fakes en memoria ────────────────────────────

type fakeStoreRepo struct {
	stores map[int64]*entity.Store
	users  *fakeUserRepo // para armar el detalle con el manager
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
	if _, ok := f.stores[s.ID]; !ok {
		return domain.ErrStoreNotFound
	}
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
	var out []*repository.StoreDetail
	for id, s := range f.stores {
		if s.RouteID != nil && *s.RouteID == routeID {
			d, _ := f.GetDetail(id)
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStoreRepo) ListOrphans() ([]*repository.StoreDetail, error) {
	var out []*repository.StoreDetail
	for id, s := range f.stores {
		if s.RouteID == nil {
			d, _ := f.GetDetail(id)
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, nextID: 100}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(id int64) error                 { return nil }
func (f *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Delete(id int64) error {
	delete(f.users, id)
	return nil
}

const (
	fallbackPassword = "PanificadoraSiloe.2025"
	shopKeeperRoleID = int64(5)
)

func buildUseCase() (*store.UseCase, *fakeStoreRepo, *fakeUserRepo) {
	users := newFakeUserRepo()
	stores := newFakeStoreRepo(users)
	uc := store.NewUseCase(stores, users, store.Config{
		DefaultRoleID:          shopKeeperRoleID,
		DefaultManagerPassword: fallbackPassword,
		BcryptCost:             bcrypt.MinCost, // cost mínimo para que los tests no sean lentos
	})
	return uc, stores, users
}

func createRequest() dto.CreateStoreRequest {
	return dto.CreateStoreRequest{
		Store: dto.StorePayload{
			Name:         "tienda la 15",
			Address:      "Calle 15 # 3-21",
			Neighborhood: "san jose norte",
			StoreTypeID:  1,
		},
	}
}

func intPtr(v int64) *int64 { return &v }

// ──────────────────────────── Create ────────────────────────────

func TestCreate_CanonicalizaNombreYBarrio(t *testing.T) {
	uc, _, _ := buildUseCase()

	out, err := uc.Create(createRequest())
	require.NoError(t, err)

	assert.Equal(t, "TIENDA LA 15", out.Name)
	assert.Equal(t, "San Jose Norte", out.Neighborhood)
	assert.Nil(t, out.Manager, "sin payload de tendero no debe crearse usuario")
	assert.Nil(t, out.RouteID)
}

func TestCreate_CamposObligatorios(t *testing.T) {
	uc, _, _ := buildUseCase()

	in := createRequest()
	in.Store.Neighborhood = ""
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_DuplicadoPorParCanonico(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Create(createRequest())
	require.NoError(t, err)

	// Misma tienda escrita distinto: debe chocar tras canonicalizar
	in := createRequest()
	in.Store.Name = "  TIENDA   la 15 "
	in.Store.Neighborhood = "SAN  JOSE  NORTE"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrStoreAlreadyExists)
}

func TestCreate_ConTenderoInline(t *testing.T) {
	uc, _, users := buildUseCase()

	in := createRequest()
	in.User = &dto.ManagerPayload{
		Name:        "Marta Pérez",
		Email:       "marta@siloe.com",
		Phone:       "3001234567",
		CountryCode: "57",
		// sin password ni status: aplican los valores por defecto
	}
	out, err := uc.Create(in)
	require.NoError(t, err)

	require.NotNil(t, out.Manager)
	assert.Equal(t, "marta@siloe.com", out.Manager.Email)
	assert.Equal(t, "57-3001234567", out.Manager.Phone)
	assert.Equal(t, entity.UserStatusInactive, out.Manager.Status)

	stored, err := users.GetByEmail("marta@siloe.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, shopKeeperRoleID, stored.RoleID)
	// Sin password en el payload se usa la contraseña de respaldo
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(fallbackPassword)))
}

func TestCreate_TenderoConPasswordPropia(t *testing.T) {
	uc, _, users := buildUseCase()

	in := createRequest()
	in.User = &dto.ManagerPayload{
		Name:     "Marta Pérez",
		Email:    "marta@siloe.com",
		Password: "MiClave.99",
		Status:   entity.UserStatusActive,
	}
	_, err := uc.Create(in)
	require.NoError(t, err)

	stored, err := users.GetByEmail("marta@siloe.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.UserStatusActive, stored.Status)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("MiClave.99")))
}

func TestCreate_EmailDeTenderoOcupado(t *testing.T) {
	uc, _, users := buildUseCase()
	require.NoError(t, users.Create(&entity.User{Email: "marta@siloe.com"}))

	in := createRequest()
	in.User = &dto.ManagerPayload{Name: "Marta", Email: "marta@siloe.com"}
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────── Update: route_id tri-estado ────────────────────────────

func updateRequest() dto.UpdateStoreRequest {
	return dto.UpdateStoreRequest{
		Store: dto.UpdateStorePayload{
			Name:         "tienda la 15",
			Address:      "Calle 15 # 3-21",
			Neighborhood: "san jose norte",
			StoreTypeID:  1,
		},
	}
}

func seedStoreWithRoute(t *testing.T, uc *store.UseCase, routeID *int64) int64 {
	t.Helper()
	in := createRequest()
	in.Store.RouteID = routeID
	out, err := uc.Create(in)
	require.NoError(t, err)
	return out.ID
}

func TestUpdate_RouteIDAusenteConserva(t *testing.T) {
	uc, _, _ := buildUseCase()
	id := seedStoreWithRoute(t, uc, intPtr(3))

	out, err := uc.Update(id, updateRequest())
	require.NoError(t, err)
	require.NotNil(t, out.RouteID)
	assert.Equal(t, int64(3), *out.RouteID)
}

func TestUpdate_RouteIDNullDesasigna(t *testing.T) {
	uc, _, _ := buildUseCase()
	id := seedStoreWithRoute(t, uc, intPtr(3))

	in := updateRequest()
	in.Store.RouteID = dto.OptionalID{Present: true, Value: nil}
	out, err := uc.Update(id, in)
	require.NoError(t, err)
	assert.Nil(t, out.RouteID)
}

func TestUpdate_RouteIDConValorReasigna(t *testing.T) {
	uc, _, _ := buildUseCase()
	id := seedStoreWithRoute(t, uc, nil)

	in := updateRequest()
	in.Store.RouteID = dto.OptionalID{Present: true, Value: intPtr(7)}
	out, err := uc.Update(id, in)
	require.NoError(t, err)
	require.NotNil(t, out.RouteID)
	assert.Equal(t, int64(7), *out.RouteID)
}

func TestUpdate_TiendaInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Update(999, updateRequest())
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

// ──────────────────────────── Update: tendero ────────────────────────────

func TestUpdate_SinNewUserConservaManager(t *testing.T) {
	uc, _, _ := buildUseCase()

	in := createRequest()
	in.User = &dto.ManagerPayload{Name: "Marta", Email: "marta@siloe.com"}
	created, err := uc.Create(in)
	require.NoError(t, err)
	require.NotNil(t, created.Manager)

	out, err := uc.Update(created.ID, updateRequest())
	require.NoError(t, err)
	require.NotNil(t, out.Manager)
	assert.Equal(t, created.Manager.ID, out.Manager.ID)
}

func TestUpdate_SobreescribeManagerEnSitio(t *testing.T) {
	uc, _, users := buildUseCase()

	in := createRequest()
	in.User = &dto.ManagerPayload{Name: "Marta", Email: "marta@siloe.com"}
	created, err := uc.Create(in)
	require.NoError(t, err)
	managerID := created.Manager.ID

	up := updateRequest()
	up.User = &dto.ManagerPayload{
		Name:        "Marta Actualizada",
		Email:       "marta.nueva@siloe.com",
		Phone:       "3117654321",
		CountryCode: "57",
		Status:      entity.UserStatusActive,
	}
	out, err := uc.Update(created.ID, up)
	require.NoError(t, err)

	// Mismo usuario, datos nuevos: no debe crearse un segundo tendero
	require.NotNil(t, out.Manager)
	assert.Equal(t, managerID, out.Manager.ID)
	assert.Equal(t, "marta.nueva@siloe.com", out.Manager.Email)
	assert.Equal(t, "57-3117654321", out.Manager.Phone)
	assert.Equal(t, entity.UserStatusActive, out.Manager.Status)
	assert.Len(t, users.users, 1)
}

func TestUpdate_ManagerColganteCreaUnoNuevo(t *testing.T) {
	uc, stores, users := buildUseCase()

	in := createRequest()
	in.User = &dto.ManagerPayload{Name: "Marta", Email: "marta@siloe.com"}
	created, err := uc.Create(in)
	require.NoError(t, err)
	oldID := created.Manager.ID

	// El usuario fue borrado pero la tienda aún lo referencia
	require.NoError(t, users.Delete(oldID))

	up := updateRequest()
	up.User = &dto.ManagerPayload{Name: "Pedro", Email: "pedro@siloe.com"}
	out, err := uc.Update(created.ID, up)
	require.NoError(t, err)

	require.NotNil(t, out.Manager)
	assert.NotEqual(t, oldID, out.Manager.ID)
	assert.Equal(t, "pedro@siloe.com", out.Manager.Email)

	// La tienda queda re-apuntada al tendero nuevo
	s, err := stores.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, s.ManagerID)
	assert.Equal(t, out.Manager.ID, *s.ManagerID)
}

func TestUpdate_TiendaSinManagerCreaUno(t *testing.T) {
	uc, _, users := buildUseCase()
	id := seedStoreWithRoute(t, uc, nil)

	up := updateRequest()
	up.User = &dto.ManagerPayload{Name: "Pedro", Email: "pedro@siloe.com"}
	out, err := uc.Update(id, up)
	require.NoError(t, err)

	require.NotNil(t, out.Manager)
	stored, err := users.GetByEmail("pedro@siloe.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, shopKeeperRoleID, stored.RoleID)
	// El tendero creado en update siempre recibe la contraseña de respaldo
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(fallbackPassword)))
}

// ──────────────────────────── AssignRoute y listados ────────────────────────────

func TestAssignRoute_AsignaYQuita(t *testing.T) {
	uc, _, _ := buildUseCase()
	id := seedStoreWithRoute(t, uc, nil)

	out, err := uc.AssignRoute(id, intPtr(4))
	require.NoError(t, err)
	require.NotNil(t, out.RouteID)
	assert.Equal(t, int64(4), *out.RouteID)

	out, err = uc.AssignRoute(id, nil)
	require.NoError(t, err)
	assert.Nil(t, out.RouteID)
}

func TestListOrphans_SoloTiendasSinRuta(t *testing.T) {
	uc, _, _ := buildUseCase()
	seedStoreWithRoute(t, uc, intPtr(1))

	in := createRequest()
	in.Store.Name = "tienda la esquina"
	_, err := uc.Create(in)
	require.NoError(t, err)

	orphans, err := uc.ListOrphans()
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "TIENDA LA ESQUINA", orphans[0].Name)

	enRuta, err := uc.ListByRoute(1)
	require.NoError(t, err)
	require.Len(t, enRuta, 1)
	assert.Equal(t, "TIENDA LA 15", enRuta[0].Name)
}
