package sheet

import "io"

// Reader lee la primera hoja de una planilla como filas de texto (la primera fila suele ser el encabezado).
type Reader interface {
	ReadRows(r io.Reader) ([][]string, error)
}
