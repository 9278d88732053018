package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// ReportesHandler reportes de solo lectura: pasa el rango de fechas al
// procedimiento y renombra sus result sets, sin agregar nada aquí.
type ReportesHandler struct {
	db gateway.Caller
}

// NewReportesHandler construye el handler.
func NewReportesHandler(db gateway.Caller) *ReportesHandler {
	return &ReportesHandler{db: db}
}

// Resumen GET /api/reportes/resumen?desde=&hasta=
// Cuatro sets: pedidos por estado, total de ventas, entregas por estado y
// top de materiales consumidos.
func (h *ReportesHandler) Resumen(c *fiber.Ctx) error {
	r, err := h.db.Rowsets(c.Context(), "sp_rep_resumen_dashboard",
		queryStr(c, "desde"), queryStr(c, "hasta"),
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error generando resumen"))
	}

	var totalVentas any = 0
	if row, ok := r.Set(1).First(); ok {
		totalVentas = row["total_ventas"]
	}
	return c.JSON(fiber.Map{
		"pedidos_por_estado":  r.Set(0),
		"total_ventas":        totalVentas,
		"entregas_por_estado": r.Set(2),
		"top_materiales":      r.Set(3),
	})
}

// VentasDia GET /api/reportes/ventas-dia?desde=&hasta=
func (h *ReportesHandler) VentasDia(c *fiber.Ctx) error {
	return h.items(c, "sp_rep_ventas_por_dia", queryStr(c, "desde"), queryStr(c, "hasta"))
}

// TopProductos GET /api/reportes/top-productos?desde=&hasta=&top=
func (h *ReportesHandler) TopProductos(c *fiber.Ctx) error {
	top := c.QueryInt("top", 10)
	if top < 1 {
		top = 10
	}
	return h.items(c, "sp_rep_top_productos", queryStr(c, "desde"), queryStr(c, "hasta"), top)
}

// Ops GET /api/reportes/ops?desde=&hasta= — tiempos por transición de OP.
func (h *ReportesHandler) Ops(c *fiber.Ctx) error {
	return h.items(c, "sp_rep_op_tiempos", queryStr(c, "desde"), queryStr(c, "hasta"))
}

// Materiales GET /api/reportes/materiales?desde=&hasta=&id_material=
func (h *ReportesHandler) Materiales(c *fiber.Ctx) error {
	return h.items(c, "sp_rep_consumo_materiales",
		queryStr(c, "desde"), queryStr(c, "hasta"), queryID(c, "id_material"))
}

// Entregas GET /api/reportes/entregas?desde=&hasta=&id_estado=&id_transportista=
func (h *ReportesHandler) Entregas(c *fiber.Ctx) error {
	return h.items(c, "sp_rep_entregas",
		queryStr(c, "desde"), queryStr(c, "hasta"),
		queryID(c, "id_estado"), queryID(c, "id_transportista"))
}

func (h *ReportesHandler) items(c *fiber.Ctx, proc string, args ...any) error {
	r, err := h.db.Rowsets(c.Context(), proc, args...)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error generando reporte"))
	}
	return c.JSON(dto.ItemsResponse{Items: r.Set(0)})
}
