package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/application/usecase"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// ──────────────────────────── fakes en memoria ────────────────────────────

type fakeSupplyRepo struct {
	supplies map[int64]*entity.InventorySupply
	nextID   int64
}

func newFakeSupplyRepo() *fakeSupplyRepo {
	return &fakeSupplyRepo{supplies: map[int64]*entity.InventorySupply{}, nextID: 1}
}

func (f *fakeSupplyRepo) Create(s *entity.InventorySupply) error {
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.supplies[s.ID] = &cp
	return nil
}

func (f *fakeSupplyRepo) GetByID(id int64) (*entity.InventorySupply, error) {
	s, ok := f.supplies[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSupplyRepo) Update(s *entity.InventorySupply) error {
	cp := *s
	f.supplies[s.ID] = &cp
	return nil
}

func (f *fakeSupplyRepo) List(limit, offset int) ([]*entity.InventorySupply, error) {
	return nil, nil
}

func (f *fakeSupplyRepo) Delete(id int64) error {
	delete(f.supplies, id)
	return nil
}

type fakeStockRepo struct {
	movements []entity.SuppliesStock
}

func (f *fakeStockRepo) Create(m *entity.SuppliesStock) error {
	m.ID = int64(len(f.movements) + 1)
	f.movements = append(f.movements, *m)
	return nil
}

func (f *fakeStockRepo) ListBySupply(supplyID int64, limit, offset int) ([]*entity.SuppliesStock, error) {
	return nil, nil
}

type fakeBalanceRepo struct {
	balances map[int64]decimal.Decimal
	supplies *fakeSupplyRepo
}

func (f *fakeBalanceRepo) ListWithSupply() ([]*repository.BalanceWithSupply, error) {
	var out []*repository.BalanceWithSupply
	for supplyID, bal := range f.balances {
		s, _ := f.supplies.GetByID(supplyID)
		out = append(out, &repository.BalanceWithSupply{
			Balance: entity.SuppliesBalance{InventorySupplyID: supplyID, Balance: bal},
			Supply:  *s,
		})
	}
	return out, nil
}

func (f *fakeBalanceRepo) Apply(supplyID int64, delta decimal.Decimal) error {
	f.balances[supplyID] = f.balances[supplyID].Add(delta)
	return nil
}

func buildSupplyUseCase(t *testing.T) (*usecase.SupplyUseCase, *fakeStockRepo, *fakeBalanceRepo, int64) {
	t.Helper()
	supplies := newFakeSupplyRepo()
	stock := &fakeStockRepo{}
	balances := &fakeBalanceRepo{balances: map[int64]decimal.Decimal{}, supplies: supplies}
	uc := usecase.NewSupplyUseCase(supplies, stock, balances)

	created, err := uc.Create(dto.SupplyRequest{Name: "Harina de trigo"})
	require.NoError(t, err)
	return uc, stock, balances, created.ID
}

func qty(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// ──────────────────────────── RegisterMovement ────────────────────────────

func TestRegisterMovement_EntradaSumaAlSaldo(t *testing.T) {
	uc, stock, balances, supplyID := buildSupplyUseCase(t)

	out, err := uc.RegisterMovement(7, dto.StockMovementRequest{
		InventorySupplyID: supplyID,
		Quantity:          qty("25000"),
		MovementType:      entity.StockMovementIn,
		Notes:             "bulto de 25kg",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StockMovementIn, out.MovementType)
	require.Len(t, stock.movements, 1)
	require.NotNil(t, stock.movements[0].RegisteredBy)
	assert.Equal(t, int64(7), *stock.movements[0].RegisteredBy)
	assert.True(t, balances.balances[supplyID].Equal(qty("25000")))
}

func TestRegisterMovement_SalidaRestaDelSaldo(t *testing.T) {
	uc, _, balances, supplyID := buildSupplyUseCase(t)

	_, err := uc.RegisterMovement(7, dto.StockMovementRequest{
		InventorySupplyID: supplyID,
		Quantity:          qty("25000"),
		MovementType:      entity.StockMovementIn,
	})
	require.NoError(t, err)

	_, err = uc.RegisterMovement(7, dto.StockMovementRequest{
		InventorySupplyID: supplyID,
		Quantity:          qty("8000"),
		MovementType:      entity.StockMovementOut,
	})
	require.NoError(t, err)

	assert.True(t, balances.balances[supplyID].Equal(qty("17000")), "saldo = %s", balances.balances[supplyID])
}

func TestRegisterMovement_TipoInvalido(t *testing.T) {
	uc, _, _, supplyID := buildSupplyUseCase(t)

	_, err := uc.RegisterMovement(7, dto.StockMovementRequest{
		InventorySupplyID: supplyID,
		Quantity:          qty("100"),
		MovementType:      "transfer",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_InsumoInexistente(t *testing.T) {
	uc, stock, _, _ := buildSupplyUseCase(t)

	_, err := uc.RegisterMovement(7, dto.StockMovementRequest{
		InventorySupplyID: 999,
		Quantity:          qty("100"),
		MovementType:      entity.StockMovementIn,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, stock.movements)
}

func TestListBalances_IncluyeResumenDelInsumo(t *testing.T) {
	uc, _, _, supplyID := buildSupplyUseCase(t)

	_, err := uc.RegisterMovement(7, dto.StockMovementRequest{
		InventorySupplyID: supplyID,
		Quantity:          qty("500"),
		MovementType:      entity.StockMovementIn,
	})
	require.NoError(t, err)

	list, err := uc.ListBalances()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Harina de trigo", list[0].InventorySupply.Name)
	assert.True(t, list[0].Balance.Equal(qty("500")))
}
