package gateway

import "context"

// Perfil fila usuario+rol para /me y /sync-user.
type Perfil struct {
	IDUsuario int64  `json:"id_usuario"`
	Nombre    string `json:"nombre"`
	Correo    string `json:"correo"`
	NombreRol string `json:"nombre_rol"`
}

// RolInfo fila del catálogo de roles.
type RolInfo struct {
	IDRol      int64  `json:"id_rol"`
	NombreRol  string `json:"nombre_rol"`
	DetalleRol string `json:"detalle_rol"`
}

// Transportista fila del catálogo de transportistas activos.
type Transportista struct {
	IDTransportista int64  `json:"id_transportista"`
	Codigo          string `json:"codigo"`
	Nombre          string `json:"nombre"`
	Activo          bool   `json:"activo"`
}

// Directory consultas directas (sin procedimiento) contra tablas de usuarios
// y catálogos chicos. Es lo único que esta capa lee por SQL plano.
type Directory interface {
	// RoleByEmail resuelve el nombre de rol del usuario; "" si no hay fila.
	RoleByEmail(ctx context.Context, email string) (string, error)
	// PerfilByID carga el perfil usuario+rol tras un sync.
	PerfilByID(ctx context.Context, idUsuario int64) (*Perfil, error)
	// Roles lista el catálogo completo de roles.
	Roles(ctx context.Context) ([]RolInfo, error)
	// Transportistas lista transportistas activos ordenados.
	Transportistas(ctx context.Context) ([]Transportista, error)
	// DBName devuelve el nombre de la base conectada (para /db-ping).
	DBName(ctx context.Context) (string, error)
}
