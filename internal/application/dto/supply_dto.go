package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplyRequest entrada para crear/actualizar un insumo.
type SupplyRequest struct {
	Name                 string          `json:"name"`
	PackagingType        string          `json:"packaging_type"`
	PackagingWeight      decimal.Decimal `json:"packaging_weight"`
	TotalQuantityGrMlUnd decimal.Decimal `json:"total_quantity_gr_ml_und"`
	MinimumStock         decimal.Decimal `json:"minimum_stock"`
	MeasurementUnitID    *int64          `json:"measurement_unit_id"`
	SupplierID           *int64          `json:"supplier_id"`
}

// SupplyResponse salida de un insumo.
type SupplyResponse struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	PackagingType        string          `json:"packaging_type"`
	PackagingWeight      decimal.Decimal `json:"packaging_weight"`
	TotalQuantityGrMlUnd decimal.Decimal `json:"total_quantity_gr_ml_und"`
	MinimumStock         decimal.Decimal `json:"minimum_stock"`
	MeasurementUnitID    *int64          `json:"measurement_unit_id"`
	SupplierID           *int64          `json:"supplier_id"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// SupplySummary resumen del insumo dentro de un saldo.
type SupplySummary struct {
	ID                   int64           `json:"id"`
	Name                 string          `json:"name"`
	PackagingType        string          `json:"packaging_type"`
	PackagingWeight      decimal.Decimal `json:"packaging_weight"`
	TotalQuantityGrMlUnd decimal.Decimal `json:"total_quantity_gr_ml_und"`
	MinimumStock         decimal.Decimal `json:"minimum_stock"`
}

// StockMovementRequest entrada para registrar un movimiento de stock.
type StockMovementRequest struct {
	InventorySupplyID int64           `json:"inventory_supply_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	MovementType      string          `json:"movement_type"` // in | out
	Notes             string          `json:"notes"`
}

// StockMovementResponse salida de un movimiento.
type StockMovementResponse struct {
	ID                int64           `json:"id"`
	InventorySupplyID int64           `json:"inventory_supply_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	MovementType      string          `json:"movement_type"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
}

// BalanceResponse saldo de un insumo con su resumen, ordenado por balance ASC
// en el listado (primero los insumos más escasos).
type BalanceResponse struct {
	ID              int64           `json:"id"`
	Balance         decimal.Decimal `json:"balance"`
	UpdatedAt       time.Time       `json:"updated_at"`
	InventorySupply SupplySummary   `json:"inventory_supply"`
}
