package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aracah/aracah-api/internal/application/gateway"
)

var _ gateway.Directory = (*Directory)(nil)

// Directory consultas directas contra usuarios/roles y catálogos chicos.
// No pasa por procedimientos: son lecturas triviales sin lógica de negocio.
type Directory struct {
	pool *pgxpool.Pool
}

// NewDirectory construye el directorio sobre el pool compartido.
func NewDirectory(pool *pgxpool.Pool) *Directory {
	return &Directory{pool: pool}
}

// RoleByEmail devuelve el nombre de rol del usuario, "" si no tiene fila.
func (d *Directory) RoleByEmail(ctx context.Context, email string) (string, error) {
	const q = `
		SELECT r.nombre_rol
		FROM usuarios u
		JOIN roles r ON r.id_rol = u.id_rol
		WHERE u.correo = $1
		LIMIT 1`
	var rol string
	err := d.pool.QueryRow(ctx, q, email).Scan(&rol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("rol por correo: %w", err)
	}
	return rol, nil
}

// PerfilByID carga el perfil usuario+rol; nil si el usuario no existe.
func (d *Directory) PerfilByID(ctx context.Context, idUsuario int64) (*gateway.Perfil, error) {
	const q = `
		SELECT u.id_usuario, u.nombre, u.correo, r.nombre_rol
		FROM usuarios u
		JOIN roles r ON u.id_rol = r.id_rol
		WHERE u.id_usuario = $1`
	var p gateway.Perfil
	err := d.pool.QueryRow(ctx, q, idUsuario).Scan(&p.IDUsuario, &p.Nombre, &p.Correo, &p.NombreRol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("perfil: %w", err)
	}
	return &p, nil
}

// Roles lista el catálogo de roles ordenado por id.
func (d *Directory) Roles(ctx context.Context) ([]gateway.RolInfo, error) {
	const q = `SELECT id_rol, nombre_rol, COALESCE(detalle_rol, '') FROM roles ORDER BY id_rol`
	rows, err := d.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listar roles: %w", err)
	}
	defer rows.Close()
	var list []gateway.RolInfo
	for rows.Next() {
		var r gateway.RolInfo
		if err := rows.Scan(&r.IDRol, &r.NombreRol, &r.DetalleRol); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, r)
	}
	return list, rows.Err()
}

// Transportistas lista transportistas activos en el orden del catálogo.
func (d *Directory) Transportistas(ctx context.Context) ([]gateway.Transportista, error) {
	const q = `
		SELECT id_transportista, codigo, nombre, activo
		FROM cat_transportista
		WHERE activo
		ORDER BY orden, nombre`
	rows, err := d.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listar transportistas: %w", err)
	}
	defer rows.Close()
	var list []gateway.Transportista
	for rows.Next() {
		var t gateway.Transportista
		if err := rows.Scan(&t.IDTransportista, &t.Codigo, &t.Nombre, &t.Activo); err != nil {
			return nil, fmt.Errorf("scan transportista: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// DBName nombre de la base conectada, para el db-ping.
func (d *Directory) DBName(ctx context.Context) (string, error) {
	var name string
	if err := d.pool.QueryRow(ctx, `SELECT current_database()`).Scan(&name); err != nil {
		return "", fmt.Errorf("current_database: %w", err)
	}
	return name, nil
}
