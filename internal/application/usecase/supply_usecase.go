package usecase

import (
	"time"

	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// SupplyUseCase insumos de producción, movimientos de stock y saldos.
type SupplyUseCase struct {
	supplies repository.SupplyRepository
	stock    repository.SuppliesStockRepository
	balances repository.SuppliesBalanceRepository
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(
	supplies repository.SupplyRepository,
	stock repository.SuppliesStockRepository,
	balances repository.SuppliesBalanceRepository,
) *SupplyUseCase {
	return &SupplyUseCase{supplies: supplies, stock: stock, balances: balances}
}

// Create crea un insumo.
func (uc *SupplyUseCase) Create(in dto.SupplyRequest) (*dto.SupplyResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.InventorySupply{
		Name:                 in.Name,
		PackagingType:        in.PackagingType,
		PackagingWeight:      in.PackagingWeight,
		TotalQuantityGrMlUnd: in.TotalQuantityGrMlUnd,
		MinimumStock:         in.MinimumStock,
		MeasurementUnitID:    in.MeasurementUnitID,
		SupplierID:           in.SupplierID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.supplies.Create(s); err != nil {
		return nil, err
	}
	return toSupplyResponse(s), nil
}

// GetByID obtiene un insumo.
func (uc *SupplyUseCase) GetByID(id int64) (*dto.SupplyResponse, error) {
	s, err := uc.supplies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplyResponse(s), nil
}

// Update sobreescribe los datos del insumo.
func (uc *SupplyUseCase) Update(id int64, in dto.SupplyRequest) (*dto.SupplyResponse, error) {
	s, err := uc.supplies.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		s.Name = in.Name
	}
	if in.PackagingType != "" {
		s.PackagingType = in.PackagingType
	}
	if !in.PackagingWeight.IsZero() {
		s.PackagingWeight = in.PackagingWeight
	}
	if !in.TotalQuantityGrMlUnd.IsZero() {
		s.TotalQuantityGrMlUnd = in.TotalQuantityGrMlUnd
	}
	if !in.MinimumStock.IsZero() {
		s.MinimumStock = in.MinimumStock
	}
	if in.MeasurementUnitID != nil {
		s.MeasurementUnitID = in.MeasurementUnitID
	}
	if in.SupplierID != nil {
		s.SupplierID = in.SupplierID
	}
	s.UpdatedAt = time.Now()
	if err := uc.supplies.Update(s); err != nil {
		return nil, err
	}
	return toSupplyResponse(s), nil
}

// List lista insumos con paginación.
func (uc *SupplyUseCase) List(limit, offset int) ([]dto.SupplyResponse, error) {
	list, err := uc.supplies.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplyResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSupplyResponse(s))
	}
	return out, nil
}

// Delete elimina un insumo.
func (uc *SupplyUseCase) Delete(id int64) error {
	s, err := uc.supplies.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	return uc.supplies.Delete(id)
}

// RegisterMovement registra una entrada o salida de stock y ajusta el saldo
// del insumo. Una salida aplica delta negativo.
func (uc *SupplyUseCase) RegisterMovement(userID int64, in dto.StockMovementRequest) (*dto.StockMovementResponse, error) {
	if in.InventorySupplyID == 0 || in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.MovementType != entity.StockMovementIn && in.MovementType != entity.StockMovementOut {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.supplies.GetByID(in.InventorySupplyID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	mov := &entity.SuppliesStock{
		InventorySupplyID: in.InventorySupplyID,
		Quantity:          in.Quantity,
		MovementType:      in.MovementType,
		Notes:             in.Notes,
		RegisteredBy:      &userID,
		CreatedAt:         time.Now(),
	}
	if err := uc.stock.Create(mov); err != nil {
		return nil, err
	}
	delta := in.Quantity
	if in.MovementType == entity.StockMovementOut {
		delta = delta.Neg()
	}
	if err := uc.balances.Apply(in.InventorySupplyID, delta); err != nil {
		return nil, err
	}
	return &dto.StockMovementResponse{
		ID:                mov.ID,
		InventorySupplyID: mov.InventorySupplyID,
		Quantity:          mov.Quantity,
		MovementType:      mov.MovementType,
		Notes:             mov.Notes,
		CreatedAt:         mov.CreatedAt,
	}, nil
}

// ListBalances devuelve el saldo de todos los insumos con su resumen,
// ordenado por balance ascendente.
func (uc *SupplyUseCase) ListBalances() ([]dto.BalanceResponse, error) {
	list, err := uc.balances.ListWithSupply()
	if err != nil {
		return nil, err
	}
	out := make([]dto.BalanceResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BalanceResponse{
			ID:        b.Balance.ID,
			Balance:   b.Balance.Balance,
			UpdatedAt: b.Balance.UpdatedAt,
			InventorySupply: dto.SupplySummary{
				ID:                   b.Supply.ID,
				Name:                 b.Supply.Name,
				PackagingType:        b.Supply.PackagingType,
				PackagingWeight:      b.Supply.PackagingWeight,
				TotalQuantityGrMlUnd: b.Supply.TotalQuantityGrMlUnd,
				MinimumStock:         b.Supply.MinimumStock,
			},
		})
	}
	return out, nil
}

func toSupplyResponse(s *entity.InventorySupply) *dto.SupplyResponse {
	return &dto.SupplyResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		PackagingType:        s.PackagingType,
		PackagingWeight:      s.PackagingWeight,
		TotalQuantityGrMlUnd: s.TotalQuantityGrMlUnd,
		MinimumStock:         s.MinimumStock,
		MeasurementUnitID:    s.MeasurementUnitID,
		SupplierID:           s.SupplierID,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
