package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/application/sales"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// ──────────────────────────── fakes en memoria ────────────────────────────

type fakeSaleRepo struct {
	sales  map[int64]*entity.Sale
	items  map[int64][]entity.SaleItem // por sale_id
	nextID int64
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[int64]*entity.Sale{}, items: map[int64][]entity.SaleItem{}, nextID: 1}
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.sales[s.ID] = &cp
	return nil
}

func (f *fakeSaleRepo) CreateItem(it *entity.SaleItem) error {
	it.ID = f.nextID
	f.nextID++
	f.items[it.SaleID] = append(f.items[it.SaleID], *it)
	return nil
}

func (f *fakeSaleRepo) GetByID(id int64) (*repository.SaleWithItems, error) {
	s, ok := f.sales[id]
	if !ok {
		return nil, nil
	}
	return &repository.SaleWithItems{Sale: *s, Items: f.items[id]}, nil
}

func (f *fakeSaleRepo) ListByStore(storeID int64, limit, offset int) ([]*repository.SaleWithItems, error) {
	var out []*repository.SaleWithItems
	for id, s := range f.sales {
		if s.StoreID == storeID {
			out = append(out, &repository.SaleWithItems{Sale: *s, Items: f.items[id]})
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[int64]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error                    { return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(id int64) error                             { return nil }

// fakeTxRunner imita la semántica transaccional: fn trabaja contra un staging
// que solo se vuelca al repo real si fn termina sin error.
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	productRepo *fakeProductRepo
	rollbacks   int
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	staging := newFakeSaleRepo()
	staging.nextID = f.saleRepo.nextID
	if err := fn(staging, f.productRepo); err != nil {
		f.rollbacks++
		return err
	}
	for id, s := range staging.sales {
		f.saleRepo.sales[id] = s
		f.saleRepo.items[id] = staging.items[id]
	}
	f.saleRepo.nextID = staging.nextID
	return nil
}

type fakeStoreRepo struct {
	stores map[int64]*entity.Store
}

func (f *fakeStoreRepo) Create(s *entity.Store) error          { return nil }
func (f *fakeStoreRepo) GetByID(id int64) (*entity.Store, error) {
	return f.stores[id], nil
}
func (f *fakeStoreRepo) FindByNameAndNeighborhood(name, neighborhood string) (*entity.Store, error) {
	return nil, nil
}
func (f *fakeStoreRepo) Update(s *entity.Store) error { return nil }
func (f *fakeStoreRepo) Delete(id int64) error        { return nil }
func (f *fakeStoreRepo) GetDetail(id int64) (*repository.StoreDetail, error) {
	return nil, nil
}
func (f *fakeStoreRepo) ListByRoute(routeID int64) ([]*repository.StoreDetail, error) {
	return nil, nil
}
func (f *fakeStoreRepo) ListOrphans() ([]*repository.StoreDetail, error) { return nil, nil }

type fakePaymentRepo struct {
	methods map[int64]*entity.PaymentMethod
}

func (f *fakePaymentRepo) Create(m *entity.PaymentMethod) error { return nil }
func (f *fakePaymentRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	return f.methods[id], nil
}
func (f *fakePaymentRepo) List() ([]*entity.PaymentMethod, error) { return nil, nil }

func price(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func buildUseCase() (*sales.UseCase, *fakeSaleRepo, *fakeTxRunner) {
	saleRepo := newFakeSaleRepo()
	products := &fakeProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Pan aliñado", Price: price("1500")},
		2: {ID: 2, Name: "Mogolla integral", Price: price("800.50")},
	}}
	tx := &fakeTxRunner{saleRepo: saleRepo, productRepo: products}
	stores := &fakeStoreRepo{stores: map[int64]*entity.Store{10: {ID: 10, Name: "TIENDA LA 15"}}}
	payments := &fakePaymentRepo{methods: map[int64]*entity.PaymentMethod{1: {ID: 1, Name: "Efectivo"}}}
	return sales.NewUseCase(tx, stores, payments, saleRepo), saleRepo, tx
}

// ──────────────────────────── Create ────────────────────────────

func TestCreateSale_TotalCalculadoEnServidor(t *testing.T) {
	uc, _, _ := buildUseCase()

	out, err := uc.Create(context.Background(), 7, dto.CreateSaleRequest{
		StoreID:         10,
		PaymentMethodID: 1,
		Items: []dto.SaleItemPayload{
			{ProductID: 1, Quantity: 3}, // 3 x 1500 = 4500
			{ProductID: 2, Quantity: 2}, // 2 x 800.50 = 1601
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Reference, "la venta debe llevar referencia uuid")
	assert.Equal(t, int64(7), out.UserID)
	assert.True(t, out.Total.Equal(price("6101")), "total = %s", out.Total)
	require.Len(t, out.Items, 2)
	// El precio unitario sale del producto persistido, no del cliente
	assert.True(t, out.Items[0].UnitPrice.Equal(price("1500")))
	assert.True(t, out.Items[1].Subtotal.Equal(price("1601")))
}

func TestCreateSale_EntradaIncompleta(t *testing.T) {
	uc, _, _ := buildUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, 7, dto.CreateSaleRequest{PaymentMethodID: 1, Items: []dto.SaleItemPayload{{ProductID: 1, Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, 7, dto.CreateSaleRequest{StoreID: 10, PaymentMethodID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSale_TiendaInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Create(context.Background(), 7, dto.CreateSaleRequest{
		StoreID:         99,
		PaymentMethodID: 1,
		Items:           []dto.SaleItemPayload{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestCreateSale_ProductoInexistenteDeshaceTodo(t *testing.T) {
	uc, saleRepo, tx := buildUseCase()

	_, err := uc.Create(context.Background(), 7, dto.CreateSaleRequest{
		StoreID:         10,
		PaymentMethodID: 1,
		Items: []dto.SaleItemPayload{
			{ProductID: 1, Quantity: 1},
			{ProductID: 404, Quantity: 1}, // no existe
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Nada quedó persistido: la transacción se revirtió completa
	assert.Empty(t, saleRepo.sales)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestCreateSale_CantidadInvalida(t *testing.T) {
	uc, saleRepo, _ := buildUseCase()

	_, err := uc.Create(context.Background(), 7, dto.CreateSaleRequest{
		StoreID:         10,
		PaymentMethodID: 1,
		Items:           []dto.SaleItemPayload{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, saleRepo.sales)
}

// ──────────────────────────── Consultas ────────────────────────────

func TestGetSale_ConRenglones(t *testing.T) {
	uc, _, _ := buildUseCase()

	created, err := uc.Create(context.Background(), 7, dto.CreateSaleRequest{
		StoreID:         10,
		PaymentMethodID: 1,
		Items:           []dto.SaleItemPayload{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)

	out, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Reference, out.Reference)
	require.Len(t, out.Items, 1)
	assert.True(t, out.Items[0].Subtotal.Equal(price("3000")))
}

func TestGetSale_Inexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSalesByStore(t *testing.T) {
	uc, _, _ := buildUseCase()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := uc.Create(ctx, 7, dto.CreateSaleRequest{
			StoreID:         10,
			PaymentMethodID: 1,
			Items:           []dto.SaleItemPayload{{ProductID: 2, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	list, err := uc.ListByStore(10, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	vacia, err := uc.ListByStore(55, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, vacia)
}
