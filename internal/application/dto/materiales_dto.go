package dto

import "github.com/shopspring/decimal"

// MaterialRequest body para POST /api/materiales y PUT /api/materiales/:id.
type MaterialRequest struct {
	Nombre        string           `json:"nombre"`
	Descripcion   *string          `json:"descripcion"`
	Presentacion  *string          `json:"presentacion"`
	Color         *string          `json:"color"`
	Textura       *string          `json:"textura"`
	UnidadMedida  string           `json:"unidad_medida"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario"`
}

// MaterialGuardado respuesta del upsert de material.
type MaterialGuardado struct {
	IDMaterial int64 `json:"id_material"`
}

// KardexMoveRequest body de entrada/salida/ajuste de kardex.
type KardexMoveRequest struct {
	Cantidad      *decimal.Decimal `json:"cantidad"`
	CostoUnitario *decimal.Decimal `json:"costo_unitario"`
	Comentario    *string          `json:"comentario"`
}

// KardexRegistrado respuesta de un movimiento de kardex.
type KardexRegistrado struct {
	IDKardex int64 `json:"id_kardex"`
}

// ConsumoRequest body para POST /api/op/:id/consume.
type ConsumoRequest struct {
	Consumos   []ConsumoLinea `json:"consumos"`
	Comentario *string        `json:"comentario"`
}
