package repository

import "github.com/jhoicas/siloe-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos terminados.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(p *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id int64) error
}

// RecipeRepository puerto para recetas y sus renglones.
type RecipeRepository interface {
	Create(r *entity.Recipe, items []entity.RecipeItem) error
	GetByID(id int64) (*entity.Recipe, []entity.RecipeItem, error)
	ListByProduct(productID int64) ([]*entity.Recipe, error)
	Delete(id int64) error
}
