package sheet_test

import (
	"testing"

	"github.com/jhoicas/frota-api/internal/application/sheet"
	"github.com/stretchr/testify/assert"
)

func TestColumn_IgnoraAcentosYMayusculas(t *testing.T) {
	header := []string{"Descrição", "QTD", "Unidade de Medida", "Veículos"}
	assert.Equal(t, 0, sheet.Column(header, 0, "material", "descricao"))
	assert.Equal(t, 1, sheet.Column(header, 0, "quantidade", "qtd"))
	assert.Equal(t, 2, sheet.Column(header, 0, "unidade", "medida"))
	assert.Equal(t, 3, sheet.Column(header, 0, "veiculos"))
	assert.Equal(t, -1, sheet.Column(header, 0, "placa"))
}

func TestColumn_DesdeIndice(t *testing.T) {
	header := []string{"PREFIXO", "PLACA", "BGPM", "PREFIXO", "PLACA"}
	assert.Equal(t, 3, sheet.Column(header, 1, "prefixo"))
	assert.Equal(t, 4, sheet.Column(header, 2, "placa"))
}

func TestLocate_EncuentraFilaDeEncabezado(t *testing.T) {
	rows := [][]string{
		{"RELAÇÃO DE VIATURAS"},
		{""},
		{"Prefixo", "Placa", "BGPM", "Cidade"},
		{"VP-1", "ABC1234", "12/2024", "BH"},
	}
	assert.Equal(t, 2, sheet.Locate(rows, 10, []string{"prefixo"}, []string{"placa"}, []string{"bgpm"}))
	assert.Equal(t, -1, sheet.Locate(rows, 2, []string{"prefixo"}, []string{"placa"}, []string{"bgpm"}))
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, int64(10), sheet.Quantity("10"))
	assert.Equal(t, int64(10), sheet.Quantity(" 10.0 "))
	assert.Equal(t, int64(3), sheet.Quantity("3,7"))
	assert.Equal(t, int64(0), sheet.Quantity(""))
	assert.Equal(t, int64(0), sheet.Quantity("abc"))
	assert.Equal(t, int64(0), sheet.Quantity("-4"))
}

func TestCellYBool(t *testing.T) {
	row := []string{" a ", "SIM"}
	assert.Equal(t, "a", sheet.Cell(row, 0))
	assert.Equal(t, "", sheet.Cell(row, 5))
	assert.Equal(t, "", sheet.Cell(row, -1))
	assert.True(t, sheet.Bool(sheet.Cell(row, 1)))
	assert.False(t, sheet.Bool("não"))
}

func TestColumn_PrioridadDeAlias(t *testing.T) {
	header := []string{"Unidade", "Fração"}
	assert.Equal(t, 1, sheet.Column(header, 0, "fracao", "unidade"))
	assert.Equal(t, 0, sheet.Column(header, 0, "unidade", "fracao"))
}
