// Package gateway define el contrato entre la capa HTTP y el motor relacional.
// Toda la lógica de negocio vive en procedimientos almacenados; esta capa solo
// enlaza parámetros y normaliza los result sets que devuelven.
package gateway

import (
	"context"

	"github.com/shopspring/decimal"
)

// Caller ejecuta procedimientos almacenados. Lo implementa postgres.Caller;
// los tests usan un stub.
type Caller interface {
	// Rowsets ejecuta un procedimiento que devuelve uno o más result sets
	// ordenados (refcursors). El orden de emisión se preserva tal cual.
	Rowsets(ctx context.Context, proc string, args ...any) (Result, error)
	// Row ejecuta un procedimiento con parámetros OUT (o una sola fila de
	// salida) y devuelve esa fila.
	Row(ctx context.Context, proc string, args ...any) (Row, error)
	// Exec ejecuta un procedimiento sin resultados de interés.
	Exec(ctx context.Context, proc string, args ...any) error
}

// JSONB marca un argumento que debe viajar como parámetro jsonb
// (lotes de líneas: detalle de cotización/pedido, consumos de material).
type JSONB struct {
	Value any
}

// Row una fila de un result set, indexada por nombre de columna.
type Row map[string]any

// Rowset un result set ordenado.
type Rowset []Row

// Result secuencia ordenada de result sets de una invocación.
type Result struct {
	Sets []Rowset
}

// Set devuelve el result set i; vacío si el procedimiento emitió menos sets.
func (r Result) Set(i int) Rowset {
	if i < 0 || i >= len(r.Sets) {
		return Rowset{}
	}
	return r.Sets[i]
}

// First devuelve la primera fila del primer result set.
func (r Result) First() (Row, bool) {
	return r.Set(0).First()
}

// First devuelve la primera fila del set.
func (s Rowset) First() (Row, bool) {
	if len(s) == 0 {
		return nil, false
	}
	return s[0], true
}

// TotalCount lee la columna redundante total_count de la primera fila
// (convención de sp_ped_list, sp_op_list, sp_mat_list, sp_usr_list).
func (s Rowset) TotalCount() int64 {
	row, ok := s.First()
	if !ok {
		return 0
	}
	return row.Int("total_count")
}

// Has indica si la columna existe en la fila.
func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// Int lee una columna numérica con tolerancia de tipos: los drivers pueden
// entregar int16/int32/int64, float64 o NUMERIC como decimal.
func (r Row) Int(col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case decimal.Decimal:
		return v.IntPart()
	default:
		return 0
	}
}

// String lee una columna de texto; "" si es NULL o no existe.
func (r Row) String(col string) string {
	if v, ok := r[col].(string); ok {
		return v
	}
	return ""
}

// Bool lee una columna booleana (bit en el esquema heredado de SQL Server).
func (r Row) Bool(col string) bool {
	switch v := r[col].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int32:
		return v != 0
	default:
		return false
	}
}

// Decimal lee una columna NUMERIC; cero si es NULL o de otro tipo.
func (r Row) Decimal(col string) decimal.Decimal {
	switch v := r[col].(type) {
	case decimal.Decimal:
		return v
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	default:
		return decimal.Zero
	}
}
