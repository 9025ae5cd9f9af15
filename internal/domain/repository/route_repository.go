package repository

import "github.com/jhoicas/siloe-api/internal/domain/entity"

// RouteRepository puerto de persistencia para rutas de reparto.
type RouteRepository interface {
	Create(route *entity.Route) error
	GetByID(id int64) (*entity.Route, error)
	Update(route *entity.Route) error
	List() ([]*entity.Route, error)
	Delete(id int64) error
}
