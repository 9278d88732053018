package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// UsuariosHandler administración de usuarios (rol y flag activo).
// Solo admin; el alta real la hace sync-user al primer login.
type UsuariosHandler struct {
	db gateway.Caller
}

// NewUsuariosHandler construye el handler.
func NewUsuariosHandler(db gateway.Caller) *UsuariosHandler {
	return &UsuariosHandler{db: db}
}

// List GET /api/usuarios?q=&id_rol=&activo=
func (h *UsuariosHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c, defaultPageSize)

	var activo *bool
	if v := c.Query("activo"); v != "" {
		activo = parseActivo(v)
	}

	r, err := h.db.Rowsets(c.Context(), "sp_usr_list",
		page, pageSize, queryStr(c, "q"), queryID(c, "id_rol"), activo,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando usuarios"))
	}

	items := r.Set(0)
	return c.JSON(dto.ListResponse{Items: items, Total: items.TotalCount(), Page: page, PageSize: pageSize})
}

// GetByID GET /api/usuarios/:id — fila pelada.
func (h *UsuariosHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id_usuario inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_usr_get", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo usuario"))
	}
	row, ok := r.First()
	if !ok {
		return fail(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return c.JSON(row)
}

// Update PUT /api/usuarios/:id — rol y activo; devuelve el usuario
// actualizado como lo deja el procedimiento.
func (h *UsuariosHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id_usuario inválido")
	}
	var in dto.UsuarioUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.IDRol <= 0 {
		return fail(c, fiber.StatusBadRequest, "id_rol es requerido")
	}

	activo := parseActivo(in.Activo)
	if activo == nil {
		t := true
		activo = &t
	}

	row, err := h.db.Row(c.Context(), "sp_usr_update_admin", id, in.IDRol, *activo)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error actualizando usuario"))
	}
	if !row.Has("id_usuario") {
		return fail(c, fiber.StatusNotFound, "Usuario no encontrado tras actualizar")
	}
	return c.JSON(fiber.Map{"ok": true, "usuario": row})
}

// Roles GET /api/usuarios/roles — arreglo pelado, como espera el FE.
func (h *UsuariosHandler) Roles(c *fiber.Ctx) error {
	r, err := h.db.Rowsets(c.Context(), "sp_roles_list")
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando roles"))
	}
	return c.JSON(r.Set(0))
}
