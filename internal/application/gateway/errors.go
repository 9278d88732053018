package gateway

import (
	"errors"
	"fmt"
)

// ProcError error de un procedimiento almacenado. Message trae el texto del
// RAISE del procedimiento cuando la base lo expone; los rechazos de reglas de
// negocio llegan por esta vía.
type ProcError struct {
	Proc    string
	Message string
	Err     error
}

func (e *ProcError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Proc, e.Err)
}

func (e *ProcError) Unwrap() error { return e.Err }

// ErrorMessage extrae el mensaje útil de un error de procedimiento; si no hay
// mensaje del motor devuelve fallback.
func ErrorMessage(err error, fallback string) string {
	var pe *ProcError
	if errors.As(err, &pe) && pe.Message != "" {
		return pe.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
