package repository

import "github.com/jhoicas/siloe-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay registro.
type UserRepository interface {
	Create(user *entity.User) error // asigna user.ID
	GetByID(id int64) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	UpdateLastLogin(id int64) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id int64) error
}
