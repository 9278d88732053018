package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// PedidosHandler pedidos de venta: lecturas, creación manual o desde
// cotización aprobada, y transiciones PEN→PROD→LISTO→ENT / CANC.
type PedidosHandler struct {
	db gateway.Caller
}

// NewPedidosHandler construye el handler.
func NewPedidosHandler(db gateway.Caller) *PedidosHandler {
	return &PedidosHandler{db: db}
}

// List GET /api/pedidos — un solo set con columna total_count redundante.
func (h *PedidosHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c, defaultPageSize)

	r, err := h.db.Rowsets(c.Context(), "sp_ped_list",
		page, pageSize, queryStr(c, "q"), queryStr(c, "estado"),
		queryID(c, "id_cliente"), queryStr(c, "desde"), queryStr(c, "hasta"),
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando pedidos"))
	}

	items := r.Set(0)
	return c.JSON(dto.ListResponse{Items: items, Total: items.TotalCount(), Page: page, PageSize: pageSize})
}

// GetByID GET /api/pedidos/:id — set 0 header, set 1 totales.
func (h *PedidosHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_ped_get", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo pedido"))
	}
	header, ok := r.First()
	if !ok {
		return fail(c, fiber.StatusNotFound, "Pedido no encontrado")
	}
	totals, ok := r.Set(1).First()
	if !ok {
		totals = gateway.Row{"subtotal": 0, "impuesto": 0, "total": 0}
	}
	return c.JSON(fiber.Map{"header": header, "totals": totals})
}

// GetDetalle GET /api/pedidos/:id/detalle
func (h *PedidosHandler) GetDetalle(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_ped_get_detalle", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo detalle de pedido"))
	}
	return c.JSON(dto.ItemsResponse{Items: r.Set(0)})
}

// Confirmar POST /api/pedidos/confirmar — crea un pedido a partir de una
// cotización aprobada.
func (h *PedidosHandler) Confirmar(c *fiber.Ctx) error {
	var in struct {
		IDCotizacion      int64   `json:"id_cotizacion"`
		RecalcularPrecios bool    `json:"recalcular_precios"`
		NumeroPedido      *string `json:"numero_pedido"`
		FechaCompromiso   *string `json:"fecha_compromiso"`
	}
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.IDCotizacion <= 0 {
		return fail(c, fiber.StatusBadRequest, "id_cotizacion es requerido")
	}

	ip, ua := auditMeta(c)
	row, err := h.db.Row(c.Context(), "sp_confirmar_pedido_desde_cotizacion",
		in.IDCotizacion, in.RecalcularPrecios, in.NumeroPedido, in.FechaCompromiso, nil, ip, ua,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error confirmando pedido desde cotización"))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id_pedido": row.Int("id_pedido_out")})
}

// CrearManual POST /api/pedidos/manual — líneas en jsonb, precios los
// resuelve el procedimiento salvo override explícito.
func (h *PedidosHandler) CrearManual(c *fiber.Ctx) error {
	var in dto.PedidoManualRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.IDCliente <= 0 {
		return fail(c, fiber.StatusBadRequest, "id_cliente inválido")
	}

	lineas := dto.DepurarLineas(in.LineasEfectivas())
	if len(lineas) == 0 {
		return fail(c, fiber.StatusBadRequest, "Debes enviar al menos una línea")
	}

	row, err := h.db.Row(c.Context(), "sp_ped_crear_manual",
		in.IDCliente, in.FechaCompromiso, in.Descripcion, gateway.JSONB{Value: lineas},
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error creando pedido manual"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PedidoCreado{
		IDPedido: row.Int("id_pedido_out"),
		Numero:   row.String("numero_out"),
	})
}

// ToProd POST /api/pedidos/:id/to-prod — crea/obtiene la OP del pedido y
// luego mueve el pedido a PROD. Cualquier error de base responde 400.
func (h *PedidosHandler) ToProd(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	row, err := h.db.Row(c.Context(), "sp_op_create_from_pedido", id)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "Error en la transición"))
	}
	idOrden := row.Int("id_orden_out")

	if err := h.transicion(c, id, "PROD", "A producción"); err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "Error en la transición"))
	}
	return c.JSON(fiber.Map{"ok": true, "id_pedido": id, "id_orden": idOrden})
}

// ToListo POST /api/pedidos/:id/to-listo
func (h *PedidosHandler) ToListo(c *fiber.Ctx) error {
	return h.transicionSimple(c, "LISTO", "Marcado listo")
}

// ToEnt POST /api/pedidos/:id/to-ent
func (h *PedidosHandler) ToEnt(c *fiber.Ctx) error {
	return h.transicionSimple(c, "ENT", "Entregado")
}

// Cancel POST /api/pedidos/:id/cancel — acepta comentario opcional.
func (h *PedidosHandler) Cancel(c *fiber.Ctx) error {
	var in dto.ComentarioRequest
	_ = c.BodyParser(&in)
	comentario := in.Comentario
	if comentario == "" {
		comentario = "Cancelado"
	}
	return h.transicionSimple(c, "CANC", comentario)
}

// ToPen POST /api/pedidos/:id/to-pen — retorno forzado a PEN, solo admin.
func (h *PedidosHandler) ToPen(c *fiber.Ctx) error {
	return h.transicionSimple(c, "PEN", "Forzado a PEN")
}

func (h *PedidosHandler) transicionSimple(c *fiber.Ctx, destino, comentario string) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	if err := h.transicion(c, id, destino, comentario); err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "Error en la transición"))
	}
	return c.JSON(fiber.Map{"ok": true, "id_pedido": id, "nuevo_estado": destino})
}

func (h *PedidosHandler) transicion(c *fiber.Ctx, id int64, destino, comentario string) error {
	ip, ua := auditMeta(c)
	return h.db.Exec(c.Context(), "sp_cambiar_estado",
		dominioPedido, id, destino, comentario, nil, ip, ua,
	)
}
