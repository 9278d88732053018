package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/gateway"
)

// ProductosHandler lectura puntual de producto para las vistas de líneas.
type ProductosHandler struct {
	db gateway.Caller
}

// NewProductosHandler construye el handler.
func NewProductosHandler(db gateway.Caller) *ProductosHandler {
	return &ProductosHandler{db: db}
}

// Brief GET /api/productos/:id/brief — id, sku, nombre, precio e impuesto.
func (h *ProductosHandler) Brief(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_prod_brief", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo producto"))
	}
	row, ok := r.First()
	if !ok {
		return fail(c, fiber.StatusNotFound, "No encontrado")
	}
	return c.JSON(row)
}
