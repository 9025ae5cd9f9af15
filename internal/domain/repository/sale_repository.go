package repository

import "github.com/jhoicas/siloe-api/internal/domain/entity"

// SaleWithItems venta con sus renglones.
type SaleWithItems struct {
	Sale  entity.Sale
	Items []entity.SaleItem
}

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(s *entity.Sale) error // asigna s.ID
	CreateItem(it *entity.SaleItem) error
	GetByID(id int64) (*SaleWithItems, error)
	ListByStore(storeID int64, limit, offset int) ([]*SaleWithItems, error)
}
