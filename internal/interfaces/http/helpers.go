package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/aracah/aracah-api/internal/application/dto"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	maxIPLen = 64
	maxUALen = 512
)

// fail responde el contrato de error { "error": ... }.
func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

// paramID lee y valida el :id de la ruta; 0 indica id inválido.
func paramID(c *fiber.Ctx) int64 {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// pageParams lee page/pageSize 1-based, con clamping del tamaño de página.
func pageParams(c *fiber.Ctx, defSize int) (page, pageSize int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = c.QueryInt("pageSize", defSize)
	if pageSize < 1 {
		pageSize = defSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// queryStr devuelve el query param limpio como *string; nil si viene vacío.
// Los procedimientos esperan NULL, no cadena vacía, para "sin filtro".
func queryStr(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

// queryID devuelve el query param como *int64; nil si falta o no es numérico.
func queryID(c *fiber.Ctx, key string) *int64 {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// auditMeta IP y User-Agent truncados para los parámetros de auditoría.
func auditMeta(c *fiber.Ctx) (ip, ua string) {
	ip = c.IP()
	if len(ip) > maxIPLen {
		ip = ip[:maxIPLen]
	}
	ua = c.Get(fiber.HeaderUserAgent)
	if len(ua) > maxUALen {
		ua = ua[:maxUALen]
	}
	return ip, ua
}

// parseActivo interpreta el campo activo con la laxitud del FE histórico:
// bool, número o string ("1", "true", "si"). nil = sin valor.
func parseActivo(v any) *bool {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return &t
	case float64:
		b := t != 0
		return &b
	case string:
		if strings.TrimSpace(t) == "" {
			return nil
		}
		s := strings.ToLower(strings.TrimSpace(t))
		b := s == "1" || s == "true" || s == "si"
		return &b
	default:
		return nil
	}
}
