package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/siloe-api/internal/domain/entity"
)

// BalanceWithSupply saldo de un insumo junto con el resumen del insumo.
type BalanceWithSupply struct {
	Balance entity.SuppliesBalance
	Supply  entity.InventorySupply
}

// SupplyRepository puerto de persistencia para insumos.
type SupplyRepository interface {
	Create(s *entity.InventorySupply) error
	GetByID(id int64) (*entity.InventorySupply, error)
	Update(s *entity.InventorySupply) error
	List(limit, offset int) ([]*entity.InventorySupply, error)
	Delete(id int64) error
}

// SuppliesStockRepository puerto para movimientos de stock de insumos.
type SuppliesStockRepository interface {
	Create(m *entity.SuppliesStock) error
	ListBySupply(supplyID int64, limit, offset int) ([]*entity.SuppliesStock, error)
}

// SuppliesBalanceRepository puerto para saldos de insumos.
type SuppliesBalanceRepository interface {
	// ListWithSupply devuelve todos los saldos con el resumen del insumo,
	// ordenados por balance ascendente (los más escasos primero).
	ListWithSupply() ([]*BalanceWithSupply, error)
	// Apply suma delta al saldo del insumo, creando la fila si no existe.
	Apply(supplyID int64, delta decimal.Decimal) error
}
