// Package pdf genera los reportes tabulares en PDF con Maroto v2.
//
// Layout de la página A4 (horizontal cuando la tabla es ancha):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + subtítulo (emisor y fecha)     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CABECERA: columnas con fondo institucional                 │
//	│  FILAS: una por registro, alternando fondo                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: cantidad de registros                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/frota-api/internal/application/report"
)

// landscapeFrom a partir de cuántas columnas la página va en horizontal.
const landscapeFrom = 7

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 51, Blue: 102}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorZebra   = &props.Color{Red: 240, Green: 243, Blue: 247}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ report.PDFRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer implementa report.PDFRenderer usando Maroto v2.
type MarotoRenderer struct {
	author string
}

// NewMarotoRenderer construye el renderer. author queda en los metadatos del documento.
func NewMarotoRenderer(author string) *MarotoRenderer { return &MarotoRenderer{author: author} }

// Render genera el PDF de la tabla y devuelve sus bytes.
func (g *MarotoRenderer) Render(t report.Table) ([]byte, error) {
	if len(t.Headers) == 0 {
		return nil, fmt.Errorf("pdf: tabla sin columnas")
	}
	widths := columnWidths(t)
	grid := 0
	for _, w := range widths {
		grid += w
	}

	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithMaxGridSize(grid).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(t.Title, true).
		WithAuthor(g.author, true)
	if len(t.Headers) >= landscapeFrom {
		b = b.WithOrientation(orientation.Horizontal)
	}
	m := maroto.New(b.Build())

	// Título y cabecera se repiten en cada página.
	if err := m.RegisterHeader(
		titleRow(t, grid),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
		headerRow(t.Headers, widths),
	); err != nil {
		return nil, fmt.Errorf("pdf: registrar encabezado: %w", err)
	}

	for i, r := range t.Rows {
		m.AddRows(bodyRow(r, widths, i%2 == 1))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(t.Rows), grid))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func titleRow(t report.Table, grid int) core.Row {
	return row.New(16).Add(
		col.New(grid).Add(
			text.New(t.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(t.Subtitle, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
	)
}

func headerRow(headers []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(widths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func bodyRow(values []string, widths []int, zebra bool) core.Row {
	cols := make([]core.Col, 0, len(widths))
	for i, w := range widths {
		cols = append(cols, col.New(w).Add(text.New(cell(values, i), props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1, Right: 1,
		})))
	}
	r := row.New(7).Add(cols...)
	if zebra {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorZebra})
	}
	return r
}

func totalRow(n, grid int) core.Row {
	return row.New(8).Add(col.New(grid).Add(
		text.New(fmt.Sprintf("Total de registros: %d", n), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Right: 1,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// columnWidths usa t.Widths si tiene una entrada positiva por columna; si no, una unidad por columna.
func columnWidths(t report.Table) []int {
	if len(t.Widths) == len(t.Headers) {
		ok := true
		for _, w := range t.Widths {
			if w <= 0 {
				ok = false
				break
			}
		}
		if ok {
			return t.Widths
		}
	}
	widths := make([]int, len(t.Headers))
	for i := range widths {
		widths[i] = 1
	}
	return widths
}

func cell(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
