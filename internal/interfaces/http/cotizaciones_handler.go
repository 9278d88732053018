package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// Dominios del procedimiento genérico de cambio de estado.
const (
	dominioCotizacion = "COTIZACION"
	dominioPedido     = "PEDIDO"
	dominioOP         = "OP"
)

// CotizacionesHandler ciclo de vida de cotizaciones: PEN → APR|RECH y
// confirmación a pedido. Las transiciones las valida la base.
type CotizacionesHandler struct {
	db gateway.Caller
}

// NewCotizacionesHandler construye el handler.
func NewCotizacionesHandler(db gateway.Caller) *CotizacionesHandler {
	return &CotizacionesHandler{db: db}
}

// List GET /api/cotizaciones?q=&estado=&id_cliente=&desde=&hasta=&page=&pageSize=
func (h *CotizacionesHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c, defaultPageSize)

	r, err := h.db.Rowsets(c.Context(), "sp_cot_list",
		queryStr(c, "q"), queryID(c, "id_cliente"), queryStr(c, "estado"),
		queryStr(c, "desde"), queryStr(c, "hasta"), page, pageSize,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando cotizaciones"))
	}

	items := r.Set(0)
	total := int64(len(items))
	if row, ok := r.Set(1).First(); ok {
		total = row.Int("total")
	}
	return c.JSON(dto.ListResponse{Items: items, Total: total, Page: page, PageSize: pageSize})
}

// GetByID GET /api/cotizaciones/:id — set 0 header, set 1 detalle.
func (h *CotizacionesHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "Parámetro id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_cot_get", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo cotización"))
	}
	header, ok := r.First()
	if !ok {
		return fail(c, fiber.StatusNotFound, "No encontrado")
	}
	return c.JSON(dto.HeaderDetalle{Header: header, Detalle: r.Set(1)})
}

// Create POST /api/cotizaciones — el lote de líneas viaja como jsonb;
// el procedimiento genera el correlativo y devuelve id + número.
func (h *CotizacionesHandler) Create(c *fiber.Ctx) error {
	var in dto.CotizacionCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}

	lineas := dto.DepurarLineas(in.Detalle)
	if in.IDCliente <= 0 || len(lineas) == 0 {
		return fail(c, fiber.StatusBadRequest, "id_cliente y detalle son obligatorios")
	}

	row, err := h.db.Row(c.Context(), "sp_generar_cotizacion",
		in.IDCliente, gateway.JSONB{Value: lineas}, in.ValidaHasta, in.Descripcion, nil,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error al crear la cotización"))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CotizacionCreada{
		IDCotizacion: row.Int("id_cotizacion"),
		Numero:       row.String("numero_out"),
	})
}

// Update PUT /api/cotizaciones/:id
func (h *CotizacionesHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "Parámetro id inválido")
	}
	var in dto.CotizacionUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}

	var detalle any
	if in.Detalle != nil {
		detalle = gateway.JSONB{Value: dto.DepurarLineas(in.Detalle)}
	}
	if err := h.db.Exec(c.Context(), "sp_cot_update", id, in.ValidaHasta, in.Descripcion, detalle); err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error actualizando cotización"))
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Approve POST /api/cotizaciones/:id/approve — COTIZACION → APR.
func (h *CotizacionesHandler) Approve(c *fiber.Ctx) error {
	return h.cambiarEstado(c, "APR", "Aprobación de cotización")
}

// Reject POST /api/cotizaciones/:id/reject — COTIZACION → RECH.
func (h *CotizacionesHandler) Reject(c *fiber.Ctx) error {
	var in dto.ComentarioRequest
	_ = c.BodyParser(&in)
	comentario := in.Comentario
	if comentario == "" {
		comentario = "Rechazada"
	}
	return h.cambiarEstado(c, "RECH", comentario)
}

func (h *CotizacionesHandler) cambiarEstado(c *fiber.Ctx, destino, comentario string) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "Parámetro id inválido")
	}
	ip, ua := auditMeta(c)
	err := h.db.Exec(c.Context(), "sp_cambiar_estado",
		dominioCotizacion, id, destino, comentario, nil, ip, ua,
	)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "Error en la transición"))
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// ConfirmToPedido POST /api/cotizaciones/:id/confirm-to-pedido
func (h *CotizacionesHandler) ConfirmToPedido(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "Parámetro id inválido")
	}
	var in dto.ConfirmarPedidoRequest
	_ = c.BodyParser(&in)

	ip, ua := auditMeta(c)
	row, err := h.db.Row(c.Context(), "sp_confirmar_pedido_desde_cotizacion",
		id, in.RecalcularPrecios, in.NumeroPedido, in.FechaCompromiso, nil, ip, ua,
	)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "Error confirmando pedido"))
	}
	return c.JSON(fiber.Map{"ok": true, "id_pedido": row.Int("id_pedido_out")})
}

// Delete DELETE /api/cotizaciones/:id
func (h *CotizacionesHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "Parámetro id inválido")
	}

	row, err := h.db.Row(c.Context(), "sp_cot_delete", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error eliminando cotización"))
	}
	if row.Int("affected") == 0 {
		return fail(c, fiber.StatusNotFound, "No encontrado")
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// ProductoLite GET /api/cotizaciones/aux/producto-lite?id_producto=|sku=
// Solo lectura de catálogo para el armado de líneas en el FE.
func (h *CotizacionesHandler) ProductoLite(c *fiber.Ctx) error {
	idProducto := queryID(c, "id_producto")
	sku := queryStr(c, "sku")
	if idProducto == nil && sku == nil {
		return fail(c, fiber.StatusBadRequest, "Envía id_producto o sku")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_producto_lite", idProducto, sku)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo producto"))
	}
	item, ok := r.First()
	if !ok {
		return fail(c, fiber.StatusNotFound, "Producto no encontrado")
	}
	return c.JSON(dto.ItemResponse{Item: item})
}
