package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// CatalogosHandler catálogos chicos para formularios del FE.
type CatalogosHandler struct {
	db gateway.Caller
}

// NewCatalogosHandler construye el handler.
func NewCatalogosHandler(db gateway.Caller) *CatalogosHandler {
	return &CatalogosHandler{db: db}
}

// Generos GET /api/catalogos/generos
func (h *CatalogosHandler) Generos(c *fiber.Ctx) error {
	r, err := h.db.Rowsets(c.Context(), "sp_cat_genero_list")
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando géneros"))
	}
	return c.JSON(dto.ItemsResponse{Items: r.Set(0)})
}

// TiposCliente GET /api/catalogos/tipos-cliente
func (h *CatalogosHandler) TiposCliente(c *fiber.Ctx) error {
	r, err := h.db.Rowsets(c.Context(), "sp_cat_tipo_cliente_list")
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando tipos de cliente"))
	}
	return c.JSON(dto.ItemsResponse{Items: r.Set(0)})
}
