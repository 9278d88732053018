package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
	"github.com/aracah/aracah-api/internal/application/gateway"
)

// MaterialesHandler materiales e inventario. El saldo de stock se deriva
// de los movimientos de kardex (ENTRADA/SALIDA/AJUSTE) en la base.
type MaterialesHandler struct {
	db gateway.Caller
}

// NewMaterialesHandler construye el handler.
func NewMaterialesHandler(db gateway.Caller) *MaterialesHandler {
	return &MaterialesHandler{db: db}
}

// List GET /api/materiales?q=&familia=&page=&pageSize=
// familia acepta código ('tela') o id numérico; lo resuelve el SP.
func (h *MaterialesHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c, defaultPageSize)

	r, err := h.db.Rowsets(c.Context(), "sp_mat_list",
		queryStr(c, "q"), page, pageSize, queryStr(c, "familia"),
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando materiales"))
	}

	items := r.Set(0)
	return c.JSON(dto.ListResponse{Items: items, Total: items.TotalCount(), Page: page, PageSize: pageSize})
}

// GetByID GET /api/materiales/:id — responde la fila pelada, sin sobre.
func (h *MaterialesHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_mat_get", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error obteniendo material"))
	}
	row, ok := r.First()
	if !ok {
		return fail(c, fiber.StatusNotFound, "Material no encontrado")
	}
	return c.JSON(row)
}

// Create POST /api/materiales — upsert sin id, 201.
func (h *MaterialesHandler) Create(c *fiber.Ctx) error {
	return h.upsert(c, 0)
}

// Update PUT /api/materiales/:id — upsert con id, 200.
func (h *MaterialesHandler) Update(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}
	return h.upsert(c, id)
}

func (h *MaterialesHandler) upsert(c *fiber.Ctx, id int64) error {
	var in dto.MaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if in.Nombre == "" || in.UnidadMedida == "" || in.CostoUnitario == nil {
		return fail(c, fiber.StatusBadRequest, "nombre, unidad_medida y costo_unitario son obligatorios")
	}

	var idArg *int64
	if id > 0 {
		idArg = &id
	}
	row, err := h.db.Row(c.Context(), "sp_mat_upsert",
		idArg, in.Nombre, in.Descripcion, in.Presentacion, in.Color, in.Textura,
		in.UnidadMedida, *in.CostoUnitario,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error guardando material"))
	}

	outID := row.Int("id_material")
	if outID == 0 {
		outID = id
	}
	status := fiber.StatusCreated
	if id > 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(dto.MaterialGuardado{IDMaterial: outID})
}

// Delete DELETE /api/materiales/:id
func (h *MaterialesHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	row, err := h.db.Row(c.Context(), "sp_mat_delete", id)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error eliminando material"))
	}
	affected := row.Int("affected")
	if affected == 0 {
		return fail(c, fiber.StatusNotFound, "Material no encontrado")
	}
	return c.JSON(fiber.Map{"affected": affected})
}

// KardexList GET /api/materiales/:id/kardex?tipo=&desde=&hasta=
func (h *MaterialesHandler) KardexList(c *fiber.Ctx) error {
	id := paramID(c)
	if id == 0 {
		return fail(c, fiber.StatusBadRequest, "id inválido")
	}

	r, err := h.db.Rowsets(c.Context(), "sp_kardex_list",
		id, queryStr(c, "tipo"), queryStr(c, "desde"), queryStr(c, "hasta"),
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error listando kardex"))
	}
	return c.JSON(dto.ItemsResponse{Items: r.Set(0)})
}

// KardexEntrada POST /api/materiales/:id/entrada
func (h *MaterialesHandler) KardexEntrada(c *fiber.Ctx) error {
	return h.kardexMove(c, "ENTRADA")
}

// KardexSalida POST /api/materiales/:id/salida
func (h *MaterialesHandler) KardexSalida(c *fiber.Ctx) error {
	return h.kardexMove(c, "SALIDA")
}

// KardexAjuste POST /api/materiales/:id/ajuste
func (h *MaterialesHandler) KardexAjuste(c *fiber.Ctx) error {
	return h.kardexMove(c, "AJUSTE")
}

func (h *MaterialesHandler) kardexMove(c *fiber.Ctx, tipo string) error {
	id := paramID(c)
	var in dto.KardexMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if id == 0 || in.Cantidad == nil || in.Cantidad.IsZero() {
		return fail(c, fiber.StatusBadRequest, "id y cantidad son obligatorios")
	}

	row, err := h.db.Row(c.Context(), "sp_kardex_registrar",
		id, tipo, *in.Cantidad, in.CostoUnitario, in.Comentario,
	)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError,
			gateway.ErrorMessage(err, "Error registrando "+strings.ToLower(tipo)))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.KardexRegistrado{IDKardex: row.Int("id_kardex")})
}

// RecalcularStock POST /api/materiales/recalcular/stock — mismo
// procedimiento que corre el job nocturno.
func (h *MaterialesHandler) RecalcularStock(c *fiber.Ctx) error {
	if err := h.db.Exec(c.Context(), "sp_materiales_recalcular_stock"); err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error recalculando stock"))
	}
	return c.JSON(dto.OkResponse{Ok: true})
}

// Familias GET /api/materiales/familias/list
func (h *MaterialesHandler) Familias(c *fiber.Ctx) error {
	r, err := h.db.Rowsets(c.Context(), "sp_mat_familias")
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, gateway.ErrorMessage(err, "Error cargando familias"))
	}
	return c.JSON(dto.ItemsResponse{Items: r.Set(0)})
}
