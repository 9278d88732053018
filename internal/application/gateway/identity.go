package gateway

import "context"

// Claims identidad verificada extraída de un token Bearer.
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// Verifier valida un token del proveedor de identidad y devuelve sus claims.
// La verificación está completamente delegada: no hay cache de tokens ni
// firma local propia.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}
