package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// ClientesHandler CRUD de clientes sobre sp_clientes_*.
type ClientesHandler struct {
	db gateway.Caller
}

// NewClientesHandler construye el handler.
func NewClientesHandler(db gateway.Caller) *ClientesHandler {
	return &ClientesHandler{db: db}
}

// List GET /api/clientes?q=&page=&pageSize=
// Convención: set 0 = items, set 1 fila única con total.
func (h *ClientesHandler) List(c *fiber.Ctx) error {
	q := queryStr(c, "q")
	page, pageSize := pageParams(c, defaultPageSize)

	r, err := h.db.Rowsets(c.Context(), "sp_clientes_list", q, page, pageSize)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando clientes"))
	}

	items := r.Set(0)
	total := int64(len(items))
	if row, ok := r.Set(1).First(); ok {
		total = row.Int("total")
	}
	return c.JSON(dto.ListResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// GetByID GET /api/clientes/:id
func (h *ClientesHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "Parámetro id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_clientes_get", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo cliente"))
	}
	item, ok := r.First()
	if !ok {
		return fail(c, fiber.StatusNotFound, "Cliente no encontrado")
	}
	return c.JSON(dto.ItemResponse{Item: item})
}

// Create POST /api/clientes
func (h *ClientesHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Nombre == "" || in.IDGenero <= 0 || in.IDTipoCliente <= 0 {
		return fail(c, fiber.StatusBadRequest, "nombre, id_genero, id_tipo_cliente son obligatorios")
	}

	row, err := h.db.Row(c.Context(), "sp_clientes_create",
		in.Nombre, in.Email, in.TelefonoMovil, in.TelefonoFijo, in.Direccion,
		in.IDGenero, in.IDTipoCliente,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error creando cliente"))
	}
	id := row.Int("id")
	if id == 0 {
		return fail(c, fiber.StatusInternalServerError, "No se obtuvo el ID del nuevo cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ClienteCreado{IDCliente: id})
}

// Update PUT /api/clientes/:id — campos NULL conservan el valor actual.
func (h *ClientesHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "Parámetro id inválido")
	}
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}

	var nombre *string
	if in.Nombre != "" {
		nombre = &in.Nombre
	}
	var idGenero, idTipo *int64
	if in.IDGenero > 0 {
		idGenero = &in.IDGenero
	}
	if in.IDTipoCliente > 0 {
		idTipo = &in.IDTipoCliente
	}

	row, err := h.db.Row(c.Context(), "sp_clientes_update",
		id, nombre, in.Email, in.TelefonoMovil, in.TelefonoFijo, in.Direccion, idGenero, idTipo,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error actualizando cliente"))
	}
	affected := row.Int("affected")
	if affected == 0 {
		return fail(c, fiber.StatusNotFound, "Cliente no encontrado o sin cambios")
	}
	return c.JSON(fiber.Map{"ok": true, "affected": affected})
}

// Delete DELETE /api/clientes/:id
func (h *ClientesHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "Parámetro id inválido")
	}

	row, err := h.db.Row(c.Context(), "sp_clientes_delete", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error eliminando cliente"))
	}
	affected := row.Int("affected")
	if affected == 0 {
		return fail(c, fiber.StatusNotFound, "Cliente no encontrado")
	}
	return c.JSON(fiber.Map{"ok": true, "affected": affected})
}
