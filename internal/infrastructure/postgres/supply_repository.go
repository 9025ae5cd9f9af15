package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)
var _ repository.SuppliesStockRepository = (*SuppliesStockRepo)(nil)
var _ repository.SuppliesBalanceRepository = (*SuppliesBalanceRepo)(nil)

const supplyColumns = `id, name, packaging_type, packaging_weight, total_quantity_gr_ml_und,
	minimum_stock, measurement_unit_id, supplier_id, created_at, updated_at`

// SupplyRepo adaptador PostgreSQL para insumos de producción.
type SupplyRepo struct {
	q Querier
}

// NewSupplyRepository construye el adaptador de insumos.
func NewSupplyRepository(q Querier) *SupplyRepo {
	return &SupplyRepo{q: q}
}

func (r *SupplyRepo) Create(s *entity.InventorySupply) error {
	query := `
		INSERT INTO inventory_supplies (name, packaging_type, packaging_weight, total_quantity_gr_ml_und,
			minimum_stock, measurement_unit_id, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.Name, s.PackagingType, s.PackagingWeight, s.TotalQuantityGrMlUnd,
		s.MinimumStock, s.MeasurementUnitID, s.SupplierID, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supply: %w", err)
	}
	return nil
}

func (r *SupplyRepo) GetByID(id int64) (*entity.InventorySupply, error) {
	query := `SELECT ` + supplyColumns + ` FROM inventory_supplies WHERE id = $1`
	var s entity.InventorySupply
	err := scanSupply(r.q.QueryRow(context.Background(), query, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supply: %w", err)
	}
	return &s, nil
}

func (r *SupplyRepo) Update(s *entity.InventorySupply) error {
	query := `
		UPDATE inventory_supplies SET name = $2, packaging_type = $3, packaging_weight = $4,
			total_quantity_gr_ml_und = $5, minimum_stock = $6, measurement_unit_id = $7,
			supplier_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, s.PackagingType, s.PackagingWeight, s.TotalQuantityGrMlUnd,
		s.MinimumStock, s.MeasurementUnitID, s.SupplierID, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update supply: %w", err)
	}
	return nil
}

func (r *SupplyRepo) List(limit, offset int) ([]*entity.InventorySupply, error) {
	query := `SELECT ` + supplyColumns + ` FROM inventory_supplies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list supplies: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventorySupply
	for rows.Next() {
		var s entity.InventorySupply
		if err := scanSupply(rows, &s); err != nil {
			return nil, fmt.Errorf("scan supply: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SupplyRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_supplies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supply: %w", err)
	}
	return nil
}

func scanSupply(row pgx.Row, s *entity.InventorySupply) error {
	return row.Scan(
		&s.ID, &s.Name, &s.PackagingType, &s.PackagingWeight, &s.TotalQuantityGrMlUnd,
		&s.MinimumStock, &s.MeasurementUnitID, &s.SupplierID, &s.CreatedAt, &s.UpdatedAt,
	)
}

// SuppliesStockRepo adaptador PostgreSQL para movimientos de stock.
type SuppliesStockRepo struct {
	q Querier
}

// NewSuppliesStockRepository construye el adaptador de movimientos de stock.
func NewSuppliesStockRepository(q Querier) *SuppliesStockRepo {
	return &SuppliesStockRepo{q: q}
}

func (r *SuppliesStockRepo) Create(m *entity.SuppliesStock) error {
	query := `
		INSERT INTO supplies_stock (inventory_supply_id, quantity, movement_type, notes, registered_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.InventorySupplyID, m.Quantity, m.MovementType, m.Notes, m.RegisteredBy, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

func (r *SuppliesStockRepo) ListBySupply(supplyID int64, limit, offset int) ([]*entity.SuppliesStock, error) {
	query := `
		SELECT id, inventory_supply_id, quantity, movement_type, notes, registered_by, created_at
		FROM supplies_stock WHERE inventory_supply_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, supplyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.SuppliesStock
	for rows.Next() {
		var m entity.SuppliesStock
		if err := rows.Scan(&m.ID, &m.InventorySupplyID, &m.Quantity, &m.MovementType,
			&m.Notes, &m.RegisteredBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SuppliesBalanceRepo adaptador PostgreSQL para saldos de insumos.
type SuppliesBalanceRepo struct {
	q Querier
}

// NewSuppliesBalanceRepository construye el adaptador de saldos.
func NewSuppliesBalanceRepository(q Querier) *SuppliesBalanceRepo {
	return &SuppliesBalanceRepo{q: q}
}

// ListWithSupply devuelve todos los saldos con el resumen del insumo,
// los más escasos primero.
func (r *SuppliesBalanceRepo) ListWithSupply() ([]*repository.BalanceWithSupply, error) {
	query := `
		SELECT b.id, b.inventory_supply_id, b.balance, b.updated_at,
			s.id, s.name, s.packaging_type, s.packaging_weight, s.total_quantity_gr_ml_und,
			s.minimum_stock, s.measurement_unit_id, s.supplier_id, s.created_at, s.updated_at
		FROM supplies_balance b
		JOIN inventory_supplies s ON s.id = b.inventory_supply_id
		ORDER BY b.balance ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []*repository.BalanceWithSupply
	for rows.Next() {
		var bw repository.BalanceWithSupply
		err := rows.Scan(
			&bw.Balance.ID, &bw.Balance.InventorySupplyID, &bw.Balance.Balance, &bw.Balance.UpdatedAt,
			&bw.Supply.ID, &bw.Supply.Name, &bw.Supply.PackagingType, &bw.Supply.PackagingWeight,
			&bw.Supply.TotalQuantityGrMlUnd, &bw.Supply.MinimumStock, &bw.Supply.MeasurementUnitID,
			&bw.Supply.SupplierID, &bw.Supply.CreatedAt, &bw.Supply.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &bw)
	}
	return list, rows.Err()
}

// Apply suma delta al saldo del insumo (delta negativo para salidas),
// creando la fila si aún no existe.
func (r *SuppliesBalanceRepo) Apply(supplyID int64, delta decimal.Decimal) error {
	query := `
		INSERT INTO supplies_balance (inventory_supply_id, balance, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (inventory_supply_id)
		DO UPDATE SET balance = supplies_balance.balance + EXCLUDED.balance, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, supplyID, delta)
	if err != nil {
		return fmt.Errorf("apply balance delta: %w", err)
	}
	return nil
}
