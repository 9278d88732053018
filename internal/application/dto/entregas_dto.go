package dto

import "github.com/shopspring/decimal"

// EntregaCreateRequest body para POST /api/entregas (crear desde pedido).
type EntregaCreateRequest struct {
	IDPedido            int64            `json:"id_pedido"`
	FechaEntrega        *string          `json:"fecha_entrega"` // YYYY-MM-DD
	MetodoEnvio         string           `json:"metodo_envio"`
	DireccionEntrega    string           `json:"direccion_entrega"`
	ReferenciaUbicacion *string          `json:"referencia_ubicacion"`
	NombreRecibe        *string          `json:"nombre_recibe"`
	CodigoEstadoEnt     string           `json:"codigo_estado_ent"`
	IDTransportista     *int64           `json:"id_transportista"`
	Guia                *string          `json:"guia"`
	CostoEnvio          *decimal.Decimal `json:"costo_envio"`
}

// EntregaCreada respuesta de POST /api/entregas.
type EntregaCreada struct {
	IDEntrega int64 `json:"id_entrega"`
}

// TrackingRequest body para PUT/PATCH /api/entregas/:id/tracking.
type TrackingRequest struct {
	FechaEnvio      *string          `json:"fecha_envio"` // ISO timestamp
	IDTransportista *int64           `json:"id_transportista"`
	Guia            *string          `json:"guia"`
	CostoEnvio      *decimal.Decimal `json:"costo_envio"`
}
