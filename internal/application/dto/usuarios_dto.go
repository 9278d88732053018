package dto

// UsuarioUpdateRequest body para PUT /api/usuarios/:id (rol y activo).
// Activo acepta bool, número o string ("1", "true", "si") por compatibilidad
// con el FE histórico; ver ParseActivo en la capa HTTP.
type UsuarioUpdateRequest struct {
	IDRol  int64 `json:"id_rol"`
	Activo any   `json:"activo"`
}
