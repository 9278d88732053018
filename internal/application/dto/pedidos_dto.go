package dto

// PedidoManualRequest body para POST /api/pedidos/manual.
// Acepta las líneas en "detalle" o en el alias histórico "lineas".
type PedidoManualRequest struct {
	IDCliente       int64          `json:"id_cliente"`
	FechaCompromiso *string        `json:"fecha_compromiso"`
	Descripcion     *string        `json:"descripcion"`
	Detalle         []LineaDetalle `json:"detalle"`
	Lineas          []LineaDetalle `json:"lineas"`
}

// LineasEfectivas devuelve detalle si viene, si no el alias lineas.
func (r PedidoManualRequest) LineasEfectivas() []LineaDetalle {
	if len(r.Detalle) > 0 {
		return r.Detalle
	}
	return r.Lineas
}

// PedidoCreado respuesta de POST /api/pedidos/manual.
type PedidoCreado struct {
	IDPedido int64  `json:"id_pedido"`
	Numero   string `json:"numero"`
}
