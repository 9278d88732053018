package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/gateway"
)

// Locals keys de la identidad verificada.
const (
	localClaims = "identity_claims"
	localRole   = "identity_role"
)

// AuthRequired valida el token Bearer contra el proveedor de identidad y deja
// los claims en c.Locals. Corta con 401 antes de cualquier consulta de rol o
// de dominio.
func AuthRequired(verifier gateway.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h := c.Get(fiber.HeaderAuthorization)
		token := ""
		if strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimSpace(h[len("Bearer "):])
		}
		if token == "" {
			return fail(c, fiber.StatusUnauthorized, "No token")
		}
		claims, err := verifier.Verify(c.Context(), token)
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Invalid token")
		}
		c.Locals(localClaims, claims)
		return c.Next()
	}
}

// GetClaims devuelve la identidad verificada del contexto; nil si no hay.
func GetClaims(c *fiber.Ctx) *gateway.Claims {
	claims, _ := c.Locals(localClaims).(*gateway.Claims)
	return claims
}

// GetRole devuelve el rol resuelto por RequireRole; "" si no se resolvió.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(localRole).(string)
	return role
}
