package dto

// CotizacionCreateRequest body para POST /api/cotizaciones.
type CotizacionCreateRequest struct {
	IDCliente   int64          `json:"id_cliente"`
	ValidaHasta *string        `json:"valida_hasta"` // YYYY-MM-DD
	Descripcion *string        `json:"descripcion"`
	Detalle     []LineaDetalle `json:"detalle"`
}

// CotizacionCreada respuesta de POST /api/cotizaciones.
type CotizacionCreada struct {
	IDCotizacion int64  `json:"id_cotizacion"`
	Numero       string `json:"numero"`
}

// CotizacionUpdateRequest body para PUT /api/cotizaciones/:id.
type CotizacionUpdateRequest struct {
	ValidaHasta *string        `json:"valida_hasta"`
	Descripcion *string        `json:"descripcion"`
	Detalle     []LineaDetalle `json:"detalle"`
}

// ComentarioRequest body opcional de reject/cancel.
type ComentarioRequest struct {
	Comentario string `json:"comentario"`
}

// ConfirmarPedidoRequest body para confirmar cotización a pedido.
type ConfirmarPedidoRequest struct {
	IDCotizacion      int64   `json:"id_cotizacion"` // solo en POST /api/pedidos/confirmar
	RecalcularPrecios bool    `json:"recalcular_precios"`
	NumeroPedido      *string `json:"numero_pedido"`
	FechaCompromiso   *string `json:"fecha_compromiso"`
}
