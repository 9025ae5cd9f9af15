package repository

import "github.com/jhoicas/siloe-api/internal/domain/entity"

// StoreTypeRepository puerto para tipos de tienda.
type StoreTypeRepository interface {
	Create(t *entity.StoreType) error
	GetByID(id int64) (*entity.StoreType, error)
	Update(t *entity.StoreType) error
	List() ([]*entity.StoreType, error)
	Delete(id int64) error
}

// MeasurementUnitRepository puerto para unidades de medida.
type MeasurementUnitRepository interface {
	Create(u *entity.MeasurementUnit) error
	List() ([]*entity.MeasurementUnit, error)
	Delete(id int64) error
}

// PaymentMethodRepository puerto para medios de pago.
type PaymentMethodRepository interface {
	Create(m *entity.PaymentMethod) error
	GetByID(id int64) (*entity.PaymentMethod, error)
	List() ([]*entity.PaymentMethod, error)
}
