package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// Tamaño de página histórico del listado de entregas.
const entregasPageSize = 10

// EntregasHandler entregas: PEN→RUTA→ENT|FALL. Las transiciones y el
// tracking usan procedimientos con salida ok/msg.
type EntregasHandler struct {
	db  gateway.Caller
	dir gateway.Directory
}

// NewEntregasHandler construye el handler.
func NewEntregasHandler(db gateway.Caller, dir gateway.Directory) *EntregasHandler {
	return &EntregasHandler{db: db, dir: dir}
}

// List GET /api/entregas — el procedimiento devuelve primero el total y
// luego los items; la respuesta se normaliza al sobre estándar.
func (h *EntregasHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c, entregasPageSize)

	r, err := h.db.Rowsets(c.Context(), "sp_ent_list",
		queryStr(c, "q"), queryID(c, "id_estado"), queryStr(c, "estado"),
		queryStr(c, "desde"), queryStr(c, "hasta"), queryID(c, "id_transportista"),
		page, pageSize,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando entregas"))
	}

	var total int64
	if row, ok := r.Set(0).First(); ok {
		total = row.Int("total")
	}
	return c.JSON(dto.ListResponse{Items: r.Set(1), Total: total, Page: page, PageSize: pageSize})
}

// GetByID GET /api/entregas/:id — set 0 header, set 1 detalle.
func (h *EntregasHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_ent_get", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo entrega"))
	}
	header, ok := r.First()
	if !ok {
		return fail(c, fiber.StatusNotFound, "Entrega no encontrada")
	}
	return c.JSON(dto.HeaderDetalle{Header: header, Detalle: r.Set(1)})
}

// Create POST /api/entregas — crea la entrega desde un pedido. Los errores
// del procedimiento (pedido inexistente, estado ilegal) responden 400.
func (h *EntregasHandler) Create(c *fiber.Ctx) error {
	var in dto.EntregaCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.IDPedido <= 0 || in.MetodoEnvio == "" || in.DireccionEntrega == "" {
		return fail(c, fiber.StatusBadRequest, "id_pedido, metodo_envio, direccion_entrega son obligatorios")
	}
	if in.CodigoEstadoEnt == "" {
		in.CodigoEstadoEnt = "PEN"
	}

	row, err := h.db.Row(c.Context(), "sp_ent_create_from_pedido",
		in.IDPedido, in.FechaEntrega, in.MetodoEnvio, in.DireccionEntrega,
		in.ReferenciaUbicacion, in.NombreRecibe, in.CodigoEstadoEnt,
		in.IDTransportista, in.Guia, in.CostoEnvio,
	)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "Error creando entrega"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EntregaCreada{IDEntrega: row.Int("id_entrega_out")})
}

// UpdateTracking PUT|PATCH /api/entregas/:id/tracking — salida ok/msg.
func (h *EntregasHandler) UpdateTracking(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.TrackingRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}

	row, err := h.db.Row(c.Context(), "sp_ent_update_tracking",
		id, in.FechaEnvio, in.IDTransportista, in.Guia, in.CostoEnvio,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error actualizando tracking"))
	}

	ok := row.Bool("ok_out")
	msg := row.String("msg_out")
	if !ok {
		if msg == "" {
			msg = "No actualizado"
		}
		return fail(c, fiber.StatusBadRequest, msg)
	}
	if msg == "" {
		msg = "Tracking actualizado"
	}
	return c.JSON(fiber.Map{"ok": true, "msg": msg})
}

// ToRuta POST /api/entregas/:id/to-ruta — la autoguía la genera el SP.
func (h *EntregasHandler) ToRuta(c *fiber.Ctx) error {
	return h.setEstado(c, "RUTA")
}

// ToEnt POST /api/entregas/:id/to-ent
func (h *EntregasHandler) ToEnt(c *fiber.Ctx) error {
	return h.setEstado(c, "ENT")
}

// ToFall POST /api/entregas/:id/to-fall
func (h *EntregasHandler) ToFall(c *fiber.Ctx) error {
	return h.setEstado(c, "FALL")
}

func (h *EntregasHandler) setEstado(c *fiber.Ctx, codigo string) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	row, err := h.db.Row(c.Context(), "sp_ent_set_estado", id, codigo)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "No se pudo actualizar estado"))
	}
	if !row.Bool("ok_out") {
		msg := row.String("msg_out")
		if msg == "" {
			msg = "No se pudo actualizar estado"
		}
		return fail(c, fiber.StatusBadRequest, msg)
	}
	return c.JSON(fiber.Map{"ok": true, "msg": row.String("msg_out")})
}

// Transportistas GET /api/transportistas — catálogo de solo lectura, va
// directo a la tabla (no hay SP para esto).
func (h *EntregasHandler) Transportistas(c *fiber.Ctx) error {
	items, err := h.dir.Transportistas(c.Context())
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "Error listando transportistas")
	}
	return c.JSON(fiber.Map{"items": items})
}
