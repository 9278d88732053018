package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// OPHandler órdenes de producción: CRE→ASG→INI↔PAU→FIN. El arranque valida
// BOM y stock en la base (sp_op_try_start) y responde ok/msg en vez de
// lanzar error.
type OPHandler struct {
	db gateway.Caller
}

// NewOPHandler construye el handler.
func NewOPHandler(db gateway.Caller) *OPHandler {
	return &OPHandler{db: db}
}

// List GET /api/op — columna total_count redundante.
func (h *OPHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c, defaultPageSize)

	r, err := h.db.Rowsets(c.Context(), "sp_op_list",
		queryStr(c, "q"), queryStr(c, "estado"), queryStr(c, "desde"), queryStr(c, "hasta"),
		page, pageSize,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando OP"))
	}

	items := r.Set(0)
	return c.JSON(dto.ListResponse{Items: items, Total: items.TotalCount(), Page: page, PageSize: pageSize})
}

// GetByID GET /api/op/:id
func (h *OPHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	header, err := h.header(c, id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo OP"))
	}
	if header == nil {
		return fail(c, fiber.StatusNotFound, "OP no encontrada")
	}
	return c.JSON(fiber.Map{"header": header})
}

// GetConsumo GET /api/op/:id/consumo
func (h *OPHandler) GetConsumo(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_op_get_consumo", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo consumos"))
	}
	return c.JSON(dto.ItemsResponse{Items: r.Set(0)})
}

// GetDetalle GET /api/op/:id/detalle — líneas del pedido asociado.
func (h *OPHandler) GetDetalle(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_op_get_detalle_pedido", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo detalle de pedido"))
	}
	return c.JSON(dto.ItemsResponse{Items: r.Set(0)})
}

// Assign POST /api/op/:id/assign — OP → ASG.
func (h *OPHandler) Assign(c *fiber.Ctx) error {
	return h.cambiarEstado(c, "ASG", "No se pudo asignar la OP")
}

// Pause POST /api/op/:id/pause — OP → PAU.
func (h *OPHandler) Pause(c *fiber.Ctx) error {
	return h.cambiarEstado(c, "PAU", "No se pudo pausar la OP")
}

// Resume POST /api/op/:id/resume — PAU → INI.
func (h *OPHandler) Resume(c *fiber.Ctx) error {
	return h.cambiarEstado(c, "INI", "No se pudo reanudar la OP")
}

// Finish POST /api/op/:id/finish — INI/PAU → FIN.
func (h *OPHandler) Finish(c *fiber.Ctx) error {
	return h.cambiarEstado(c, "FIN", "No se pudo finalizar la OP")
}

// Start POST /api/op/:id/start — sp_op_try_start decide con ok_out/msg_out:
// valida BOM y stock y registra el consumo inicial. ok=false responde 400
// con el mensaje del procedimiento, no es una excepción.
func (h *OPHandler) Start(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	row, err := h.db.Row(c.Context(), "sp_op_try_start", id)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "No se pudo iniciar la OP"))
	}
	if !row.Bool("ok_out") {
		msg := row.String("msg_out")
		if msg == "" {
			msg = "No se pudo iniciar la OP"
		}
		return fail(c, fiber.StatusBadRequest, msg)
	}
	return h.okConHeader(c, id)
}

// Consume POST /api/op/:id/consume — consumos manuales en jsonb.
func (h *OPHandler) Consume(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	var in dto.ConsumoRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if len(in.Consumos) == 0 {
		return fail(c, fiber.StatusBadRequest, "consumos[] requerido")
	}

	consumos := dto.DepurarConsumos(in.Consumos)
	ip, ua := auditMeta(c)
	err := h.db.Exec(c.Context(), "sp_registrar_consumo_material",
		id, gateway.JSONB{Value: consumos}, in.Comentario, nil, ip, ua,
	)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, "Error registrando consumo"))
	}
	return h.okConHeader(c, id)
}

func (h *OPHandler) cambiarEstado(c *fiber.Ctx, destino, fallback string) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	ip, ua := auditMeta(c)
	err := h.db.Exec(c.Context(), "sp_cambiar_estado",
		dominioOP, id, destino, nil, nil, ip, ua,
	)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, gateway.ErrorMessage(err, fallback))
	}
	return h.okConHeader(c, id)
}

// okConHeader responde {ok:true, header} con el header refrescado tras la
// acción, tal como consume el FE.
func (h *OPHandler) okConHeader(c *fiber.Ctx, id int64) error {
	header, err := h.header(c, id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo OP"))
	}
	return c.JSON(fiber.Map{"ok": true, "header": header})
}

func (h *OPHandler) header(c *fiber.Ctx, id int64) (gateway.Row, error) {
	r, err := h.db.Rowsets(c.Context(), "sp_op_get", id)
	if err != nil {
		return nil, err
	}
	header, ok := r.First()
	if !ok {
		return nil, nil
	}
	return header, nil
}
