package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
	"github.com/aracah/aracah-api/internal/domain"
)

// RequireRole resuelve el rol del usuario por correo contra la BD y lo compara
// con la lista de roles permitidos de la ruta (case-insensitive). Lista vacía
// admite cualquier rol resuelto. Debe ir después de AuthRequired.
func RequireRole(dir gateway.Directory, permitidos ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil || claims.Email == "" {
			return fail(c, fiber.StatusForbidden, "Correo no presente en token")
		}

		rol, err := dir.RoleByEmail(c.Context(), claims.Email)
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, "Error validando rol")
		}
		if rol == "" {
			return fail(c, fiber.StatusForbidden, "Rol no asignado")
		}

		if !domain.AnyMatches(permitidos, rol) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:     "Acceso denegado",
				RolActual: rol,
			})
		}

		c.Locals(localRole, rol)
		return c.Next()
	}
}
