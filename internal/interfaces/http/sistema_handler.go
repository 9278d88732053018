package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/gateway"
)

// SistemaHandler salud, roles públicos y sincronización de identidad.
type SistemaHandler struct {
	db  gateway.Caller
	dir gateway.Directory
}

// NewSistemaHandler construye el handler.
func NewSistemaHandler(db gateway.Caller, dir gateway.Directory) *SistemaHandler {
	return &SistemaHandler{db: db, dir: dir}
}

// Ping GET /api/ping
func (h *SistemaHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "time": time.Now().UTC().Format(time.RFC3339)})
}

// DBPing GET /api/db-ping — round-trip real contra la base.
func (h *SistemaHandler) DBPing(c *fiber.Ctx) error {
	db, err := h.dir.DBName(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	return c.JSON(fiber.Map{"ok": true, "db": db})
}

// Roles GET /api/roles — catálogo público de roles (lo usa la pantalla de
// registro antes de tener token).
func (h *SistemaHandler) Roles(c *fiber.Ctx) error {
	roles, err := h.dir.Roles(c.Context())
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Error listando roles")
	}
	return c.JSON(roles)
}

// Me GET /api/me — eco de la identidad verificada del token.
func (h *SistemaHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"firebase_user": GetClaims(c)})
}

// SyncUser POST /api/sync-user — alta/actualización del usuario al entrar:
// upsert por correo con rol por defecto y eco del perfil resultante.
func (h *SistemaHandler) SyncUser(c *fiber.Ctx) error {
	claims := GetClaims(c)
	if claims == nil || claims.Email == "" {
		return fail(c, fiber.StatusForbidden, "Correo no presente en token")
	}

	nombre := claims.Name
	if nombre == "" {
		nombre = claims.Email
	}

	row, err := h.db.Row(c.Context(), "sp_upsert_usuario_firebase",
		claims.Email, nombre, "cliente",
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error sincronizando usuario"))
	}

	idUsuario := row.Int("id_usuario_out")
	perfil, err := h.dir.PerfilByID(c.Context(), idUsuario)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Error obteniendo perfil")
	}

	var idCliente any
	if row.Has("id_cliente_out") {
		idCliente = row["id_cliente_out"]
	}
	return c.JSON(fiber.Map{
		"firebase_user":  claims,
		"perfil":         perfil,
		"id_cliente_out": idCliente,
	})
}
