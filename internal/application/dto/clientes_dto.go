package dto

// ClienteRequest body para POST /api/clientes y PUT /api/clientes/:id.
// En update todos los campos son opcionales; el procedimiento conserva los
// valores actuales para los que lleguen NULL.
type ClienteRequest struct {
	Nombre        string  `json:"nombre"`
	Email         *string `json:"email"`
	TelefonoMovil *string `json:"telefono_movil"`
	TelefonoFijo  *string `json:"telefono_fijo"`
	Direccion     *string `json:"direccion"`
	IDGenero      int64   `json:"id_genero"`
	IDTipoCliente int64   `json:"id_tipo_cliente"`
}

// ClienteCreado respuesta de POST /api/clientes.
type ClienteCreado struct {
	IDCliente int64 `json:"id_cliente"`
}
