package schedule

import (
	"fmt"
	"strings"
)

// BatchError edición en lote interrumpida: Committed ya quedó persistido, FailedID no.
// No hay rollback de lo confirmado; repetir la operación sobre lo restante es seguro.
type BatchError struct {
	Committed []string
	FailedID  string
	Err       error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("lote interrumpido en %s (confirmados: %s): %v", e.FailedID, strings.Join(e.Committed, ","), e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
