package usecase

import (
	"github.com/jhoicas/siloe-api/internal/application/dto"
	"github.com/jhoicas/siloe-api/internal/domain"
	"github.com/jhoicas/siloe-api/internal/domain/entity"
	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// CatalogUseCase catálogos simples: tipos de tienda, unidades de medida y
// medios de pago.
type CatalogUseCase struct {
	storeTypes repository.StoreTypeRepository
	units      repository.MeasurementUnitRepository
	payments   repository.PaymentMethodRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	storeTypes repository.StoreTypeRepository,
	units repository.MeasurementUnitRepository,
	payments repository.PaymentMethodRepository,
) *CatalogUseCase {
	return &CatalogUseCase{storeTypes: storeTypes, units: units, payments: payments}
}

// ── Tipos de tienda ──────────────────────────────────────────────────────────

// CreateStoreType crea un tipo de tienda.
func (uc *CatalogUseCase) CreateStoreType(in dto.StoreTypeRequest) (*dto.StoreTypeRef, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	t := &entity.StoreType{Name: in.Name}
	if err := uc.storeTypes.Create(t); err != nil {
		return nil, err
	}
	return &dto.StoreTypeRef{ID: t.ID, Name: t.Name}, nil
}

// ListStoreTypes lista los tipos de tienda.
func (uc *CatalogUseCase) ListStoreTypes() ([]dto.StoreTypeRef, error) {
	list, err := uc.storeTypes.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreTypeRef, 0, len(list))
	for _, t := range list {
		out = append(out, dto.StoreTypeRef{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

// UpdateStoreType renombra un tipo de tienda.
func (uc *CatalogUseCase) UpdateStoreType(id int64, in dto.StoreTypeRequest) (*dto.StoreTypeRef, error) {
	t, err := uc.storeTypes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	t.Name = in.Name
	if err := uc.storeTypes.Update(t); err != nil {
		return nil, err
	}
	return &dto.StoreTypeRef{ID: t.ID, Name: t.Name}, nil
}

// DeleteStoreType elimina un tipo de tienda.
func (uc *CatalogUseCase) DeleteStoreType(id int64) error {
	t, err := uc.storeTypes.GetByID(id)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	return uc.storeTypes.Delete(id)
}

// ── Unidades de medida ───────────────────────────────────────────────────────

// CreateUnit crea una unidad de medida.
func (uc *CatalogUseCase) CreateUnit(in dto.MeasurementUnitRequest) (*dto.MeasurementUnitResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	u := &entity.MeasurementUnit{Name: in.Name, Symbol: in.Symbol}
	if err := uc.units.Create(u); err != nil {
		return nil, err
	}
	return &dto.MeasurementUnitResponse{ID: u.ID, Name: u.Name, Symbol: u.Symbol}, nil
}

// ListUnits lista las unidades de medida.
func (uc *CatalogUseCase) ListUnits() ([]dto.MeasurementUnitResponse, error) {
	list, err := uc.units.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeasurementUnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.MeasurementUnitResponse{ID: u.ID, Name: u.Name, Symbol: u.Symbol})
	}
	return out, nil
}

// DeleteUnit elimina una unidad de medida.
func (uc *CatalogUseCase) DeleteUnit(id int64) error {
	return uc.units.Delete(id)
}

// ── Medios de pago ───────────────────────────────────────────────────────────

// CreatePaymentMethod crea un medio de pago.
func (uc *CatalogUseCase) CreatePaymentMethod(in dto.PaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.PaymentMethod{Name: in.Name}
	if err := uc.payments.Create(m); err != nil {
		return nil, err
	}
	return &dto.PaymentMethodResponse{ID: m.ID, Name: m.Name}, nil
}

// ListPaymentMethods lista los medios de pago.
func (uc *CatalogUseCase) ListPaymentMethods() ([]dto.PaymentMethodResponse, error) {
	list, err := uc.payments.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.PaymentMethodResponse{ID: m.ID, Name: m.Name})
	}
	return out, nil
}
