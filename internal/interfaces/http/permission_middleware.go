package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/siloe-api/internal/application/dto"
)

// permissionChecker es el contrato mínimo que necesita el middleware para
// verificar capacidades. Lo implementa *auth.PermissionService; el uso de
// interfaz evita el import circular.
type permissionChecker interface {
	HasCapability(ctx context.Context, roleID int64, code string) (bool, error)
}

// RequirePermission devuelve un middleware Fiber que verifica si el rol del
// token JWT tiene el permiso activo. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalRoleID).
//
// Comportamiento:
//   - 403 Forbidden → el rol no tiene el permiso o está inactivo.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Si no hay role_id en el contexto, responde 401 (el AuthMiddleware debería haberlo puesto).
func RequirePermission(code string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID := GetRoleID(c)
		if roleID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "role_id no encontrado en el token",
			})
		}

		allowed, err := checker.HasCapability(c.Context(), roleID, code)
		if err != nil {
			// Fallo de infraestructura: no es un "denegado" de negocio.
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_CHECK_FAILED",
				Message: "no se pudo verificar el permiso, intente más tarde",
			})
		}

		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "PERMISSION_DENIED",
				Message: "el rol no tiene el permiso '" + code + "'",
			})
		}

		return c.Next()
	}
}
