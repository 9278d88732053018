package dto

import "github.com/shopspring/decimal"

// LineaDetalle línea de cotización o pedido. Viaja al procedimiento como
// elemento del parámetro jsonb (antes tabla tt_linea / tt_linea_ped).
type LineaDetalle struct {
	IDProducto     int64            `json:"id_producto"`
	Cantidad       int64            `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// ConsumoLinea consumo de material de una OP (antes tt_consumo_material).
type ConsumoLinea struct {
	IDMaterial int64           `json:"id_material"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// DepurarLineas descarta líneas con producto o cantidad no positivos.
// El descarte es silencioso: el contrato histórico tolera filas basura del FE
// en vez de rechazar el lote completo.
func DepurarLineas(lineas []LineaDetalle) []LineaDetalle {
	out := make([]LineaDetalle, 0, len(lineas))
	for _, l := range lineas {
		if l.IDProducto > 0 && l.Cantidad > 0 {
			out = append(out, l)
		}
	}
	return out
}

// DepurarConsumos descarta consumos con material o cantidad no positivos.
func DepurarConsumos(consumos []ConsumoLinea) []ConsumoLinea {
	out := make([]ConsumoLinea, 0, len(consumos))
	for _, c := range consumos {
		if c.IDMaterial > 0 && c.Cantidad.IsPositive() {
			out = append(out, c)
		}
	}
	return out
}
