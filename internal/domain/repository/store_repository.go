package repository

import "github.com/jhoicas/siloe-api/internal/domain/entity"

// StoreDetail es la tienda con sus resúmenes relacionados (joins), tal como
// se devuelve al cliente. Manager nunca incluye el hash de contraseña.
type StoreDetail struct {
	Store     entity.Store
	StoreType entity.StoreType
	Manager   *entity.User
	Images    []entity.StoreImage
}

// StoreRepository puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error // asigna store.ID
	GetByID(id int64) (*entity.Store, error)
	// FindByNameAndNeighborhood busca por el par canónico de identidad.
	FindByNameAndNeighborhood(name, neighborhood string) (*entity.Store, error)
	Update(store *entity.Store) error
	Delete(id int64) error
	// GetDetail devuelve la tienda con store_type, manager e imágenes.
	GetDetail(id int64) (*StoreDetail, error)
	ListByRoute(routeID int64) ([]*StoreDetail, error)
	// ListOrphans devuelve las tiendas sin ruta asignada (route_id IS NULL).
	ListOrphans() ([]*StoreDetail, error)
}
