package dto

import "github.com/aracah/aracah-api/internal/application/gateway"

// ErrorResponse cuerpo de error HTTP. RolActual solo se llena en el 403 de
// autorización, para que el FE pueda mostrar el rol con el que entró.
type ErrorResponse struct {
	Error     string `json:"error"`
	RolActual string `json:"rol_actual,omitempty"`
}

// ListResponse envoltura estándar de listados paginados.
type ListResponse struct {
	Items    gateway.Rowset `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

// HeaderDetalle respuesta de detalle con cabecera + líneas.
type HeaderDetalle struct {
	Header  gateway.Row    `json:"header"`
	Detalle gateway.Rowset `json:"detalle"`
}

// ItemResponse respuesta de un solo registro.
type ItemResponse struct {
	Item gateway.Row `json:"item"`
}

// ItemsResponse respuesta de colección sin paginar.
type ItemsResponse struct {
	Items gateway.Rowset `json:"items"`
}

// OkResponse confirmación simple.
type OkResponse struct {
	Ok  bool   `json:"ok"`
	Msg string `json:"msg,omitempty"`
}
