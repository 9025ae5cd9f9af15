package repository

import "github.com/jhoicas/siloe-api/internal/domain/entity"

// RoleRepository puerto de persistencia para Role.
type RoleRepository interface {
	GetByID(id int64) (*entity.Role, error)
	List() ([]*entity.Role, error)
}

// PermissionRepository puerto para resolver capacidades de un rol.
type PermissionRepository interface {
	// ActiveCodesByRole devuelve los códigos de permiso activos asociados al rol
	// a través de role_permissions. Rol inexistente devuelve lista vacía.
	ActiveCodesByRole(roleID int64) ([]string, error)
}
