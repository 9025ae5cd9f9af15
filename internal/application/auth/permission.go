package auth

import (
	"context"

	"github.com/jhoicas/siloe-api/internal/domain/repository"
)

// PermissionService resuelve si un rol tiene una capacidad. La ausencia de
// rol o de permiso resuelve a denegado (false, nil), nunca a permitido ni a
// error; los errores se reservan para fallos de infraestructura.
type PermissionService struct {
	permRepo repository.PermissionRepository
}

// NewPermissionService construye el resolvedor de permisos.
func NewPermissionService(permRepo repository.PermissionRepository) *PermissionService {
	return &PermissionService{permRepo: permRepo}
}

// HasCapability verifica que el rol tenga asociado un permiso ACTIVO con
// exactamente ese código.
func (s *PermissionService) HasCapability(_ context.Context, roleID int64, code string) (bool, error) {
	codes, err := s.permRepo.ActiveCodesByRole(roleID)
	if err != nil {
		return false, err
	}
	for _, c := range codes {
		if c == code {
			return true, nil
		}
	}
	return false, nil
}
