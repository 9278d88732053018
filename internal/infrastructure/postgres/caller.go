package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aracah/aracah-api/internal/application/gateway"
	"github.com/aracah/aracah-api/pkg/logger"
)

var _ gateway.Caller = (*Caller)(nil)

// Caller ejecuta los procedimientos migrados desde SQL Server.
// Convenciones de la migración:
//   - Procedimientos de lectura devuelven SETOF refcursor; se fetchean todos
//     dentro de una transacción, preservando el orden de emisión.
//   - Procedimientos con parámetros OUT devuelven una sola fila.
//   - Los antiguos table-valued parameters viajan como jsonb (gateway.JSONB).
type Caller struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewCaller construye el gateway de procedimientos sobre el pool compartido.
func NewCaller(pool *pgxpool.Pool, log *logger.Logger) *Caller {
	return &Caller{pool: pool, log: log}
}

// Rowsets invoca un procedimiento que emite uno o más refcursors y devuelve
// los result sets en el mismo orden.
func (c *Caller) Rowsets(ctx context.Context, proc string, args ...any) (gateway.Result, error) {
	var result gateway.Result

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return result, c.wrap(proc, fmt.Errorf("begin: %w", err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	call := fmt.Sprintf("SELECT c::text FROM %s(%s) AS c", proc, placeholders(len(args)))
	rows, err := tx.Query(ctx, call, prepareArgs(args)...)
	if err != nil {
		return result, c.wrap(proc, err)
	}
	cursors, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return result, c.wrap(proc, err)
	}

	for _, cur := range cursors {
		crows, err := tx.Query(ctx, "FETCH ALL FROM "+quoteIdent(cur))
		if err != nil {
			return result, c.wrap(proc, err)
		}
		set, err := collectRowset(crows)
		if err != nil {
			return result, c.wrap(proc, err)
		}
		result.Sets = append(result.Sets, set)
	}

	if err := tx.Commit(ctx); err != nil {
		return result, c.wrap(proc, fmt.Errorf("commit: %w", err))
	}
	return result, nil
}

// Row invoca un procedimiento con parámetros OUT y devuelve su única fila.
func (c *Caller) Row(ctx context.Context, proc string, args ...any) (gateway.Row, error) {
	call := fmt.Sprintf("SELECT * FROM %s(%s)", proc, placeholders(len(args)))
	rows, err := c.pool.Query(ctx, call, prepareArgs(args)...)
	if err != nil {
		return nil, c.wrap(proc, err)
	}
	set, err := collectRowset(rows)
	if err != nil {
		return nil, c.wrap(proc, err)
	}
	if row, ok := set.First(); ok {
		return row, nil
	}
	return gateway.Row{}, nil
}

// Exec invoca un procedimiento sin resultados de interés.
func (c *Caller) Exec(ctx context.Context, proc string, args ...any) error {
	call := fmt.Sprintf("SELECT %s(%s)", proc, placeholders(len(args)))
	if _, err := c.pool.Exec(ctx, call, prepareArgs(args)...); err != nil {
		return c.wrap(proc, err)
	}
	return nil
}

// wrap convierte el error del driver en gateway.ProcError con el mensaje del
// RAISE del procedimiento cuando está disponible, y lo deja en el log.
func (c *Caller) wrap(proc string, err error) error {
	msg := ""
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		msg = pgErr.Message
	}
	if c.log != nil {
		c.log.Error().Err(err).Str("proc", proc).Msg("procedimiento falló")
	}
	return &gateway.ProcError{Proc: proc, Message: msg, Err: err}
}

// prepareArgs serializa los argumentos jsonb; el resto pasa directo al driver.
func prepareArgs(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if j, ok := a.(gateway.JSONB); ok {
			b, err := json.Marshal(j.Value)
			if err != nil {
				// Un lote inserializable nunca debería llegar aquí; que el
				// motor rechace el NULL antes que mandar basura.
				out[i] = nil
				continue
			}
			out[i] = string(b)
			continue
		}
		out[i] = a
	}
	return out
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(parts, ", ")
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// collectRowset materializa un pgx.Rows en un Rowset por nombre de columna.
func collectRowset(rows pgx.Rows) (gateway.Rowset, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = f.Name
	}

	set := gateway.Rowset{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("leer fila: %w", err)
		}
		row := make(gateway.Row, len(cols))
		for i, col := range cols {
			row[col] = values[i]
		}
		set = append(set, row)
	}
	return set, rows.Err()
}
