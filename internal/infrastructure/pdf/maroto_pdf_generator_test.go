package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/frota-api/internal/application/report"
)

func TestRender_GeneraPDF(t *testing.T) {
	g := NewMarotoRenderer("Controle de Frota")
	doc, err := g.Render(report.Table{
		Title:    "Agenda de Viaturas",
		Subtitle: "Controle de Frota - emitido em 10/03/2025 08:30",
		Headers:  []string{"Viatura", "Motorista", "Início", "Término", "Motivo"},
		Widths:   []int{2, 3, 2, 2, 3},
		Rows: [][]string{
			{"VP-100", "CB LIMA", "10/03/2025 08:00", "10/03/2025 12:00", "PATRULHA"},
			{"VP-200", "SD ROCHA", "11/03/2025 19:00", "12/03/2025 07:00", "ESCOLTA"},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRender_TablaAnchaYFilasIncompletas(t *testing.T) {
	headers := make([]string, 13)
	for i := range headers {
		headers[i] = "Col"
	}
	doc, err := NewMarotoRenderer("").Render(report.Table{
		Title:   "Controle PAV",
		Headers: headers,
		Rows:    [][]string{{"solo una"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestRender_SinColumnas(t *testing.T) {
	_, err := NewMarotoRenderer("").Render(report.Table{Title: "x"})
	assert.Error(t, err)
}

func TestColumnWidths(t *testing.T) {
	assert.Equal(t, []int{2, 3}, columnWidths(report.Table{Headers: []string{"a", "b"}, Widths: []int{2, 3}}))
	assert.Equal(t, []int{1, 1}, columnWidths(report.Table{Headers: []string{"a", "b"}, Widths: []int{12}}))
	assert.Equal(t, []int{1, 1}, columnWidths(report.Table{Headers: []string{"a", "b"}, Widths: []int{0, 3}}))
}
