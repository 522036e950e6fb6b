// Package spreadsheet lee y escribe libros XLSX con excelize.
package spreadsheet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/sheet"
)

var (
	_ report.SpreadsheetWriter = (*Excelize)(nil)
	_ sheet.Reader             = (*Excelize)(nil)
)

// maxColumnWidth ancho máximo de columna (en caracteres) al autoajustar.
const maxColumnWidth = 60

// Excelize adaptador de planillas XLSX.
type Excelize struct{}

// New construye el adaptador.
func New() *Excelize { return &Excelize{} }

// Write genera un libro con una hoja: encabezado en negrita y una fila por registro.
func (e *Excelize) Write(sheetName string, t report.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheetName == "" {
		sheetName = "Sheet1"
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: nombrar hoja: %w", err)
	}
	stream, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: abrir hoja: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len([]rune(h))
	}
	for _, r := range t.Rows {
		for i := 0; i < len(r) && i < len(widths); i++ {
			if n := len([]rune(r[i])); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, w := range widths {
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if err := stream.SetColWidth(i+1, i+1, float64(w+2)); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}

	header := make([]any, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := stream.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	for i, r := range t.Rows {
		values := make([]any, len(r))
		for j, v := range r {
			values[j] = v
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := stream.SetRow(cellRef, values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if err := stream.Flush(); err != nil {
		return nil, fmt.Errorf("xlsx: flush: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadRows lee la primera hoja del libro. Las filas vacías del final se descartan.
func (e *Excelize) ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: abrir: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: libro sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx: leer hoja %s: %w", sheets[0], err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}
