package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeasurementUnit unidad de medida de insumos (gr, ml, und...).
type MeasurementUnit struct {
	ID     int64
	Name   string
	Symbol string
}

// InventorySupply insumo de producción (harina, levadura, empaques...).
type InventorySupply struct {
	ID                   int64
	Name                 string
	PackagingType        string // bulto, caja, bolsa...
	PackagingWeight      decimal.Decimal
	TotalQuantityGrMlUnd decimal.Decimal // contenido por empaque en gr/ml/und
	MinimumStock         decimal.Decimal
	MeasurementUnitID    *int64
	SupplierID           *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Tipos de movimiento de stock de insumos.
const (
	StockMovementIn  = "in"
	StockMovementOut = "out"
)

// SuppliesStock movimiento de entrada/salida de un insumo.
type SuppliesStock struct {
	ID                int64
	InventorySupplyID int64
	Quantity          decimal.Decimal
	MovementType      string // in, out
	Notes             string
	RegisteredBy      *int64
	CreatedAt         time.Time
}

// SuppliesBalance saldo vigente de un insumo (una fila por insumo).
type SuppliesBalance struct {
	ID                int64
	InventorySupplyID int64
	Balance           decimal.Decimal
	UpdatedAt         time.Time
}
