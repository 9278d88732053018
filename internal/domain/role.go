package domain

import "strings"

// Role rol de usuario tal como vive en la tabla roles.
// La comparación es siempre case-insensitive: la BD guarda "Admin",
// "Supervisor", etc. y los tokens históricos traían variantes en minúscula.
type Role string

// Roles conocidos del sistema.
const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleVendedor   Role = "vendedor"
	RoleCliente    Role = "cliente"
)

// Matches compara el rol contra un nombre resuelto desde la BD.
func (r Role) Matches(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), string(r))
}

// AnyMatches indica si name coincide con alguno de los roles.
// Una lista vacía admite cualquier rol resuelto.
func AnyMatches(roles []Role, name string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r.Matches(name) {
			return true
		}
	}
	return false
}
