// Package sheet ubica columnas en planillas importadas a partir de alias de encabezado.
package sheet

import (
	"math"
	"strconv"
	"strings"

	"github.com/jhoicas/frota-api/pkg/textnorm"
)

// Column devuelve el índice de la columna (desde start) cuyo encabezado contiene un alias, o -1.
// Los alias se prueban en orden de prioridad. La comparación ignora mayúsculas y acentos.
func Column(header []string, start int, aliases ...string) int {
	if start < 0 {
		start = 0
	}
	folded := make([]string, len(header))
	for i := start; i < len(header); i++ {
		folded[i] = textnorm.Fold(header[i])
	}
	for _, a := range aliases {
		a = textnorm.Fold(a)
		for i := start; i < len(header); i++ {
			if folded[i] != "" && strings.Contains(folded[i], a) {
				return i
			}
		}
	}
	return -1
}

// Locate busca en las primeras maxScan filas la que contiene todos los grupos de alias; devuelve su índice o -1.
func Locate(rows [][]string, maxScan int, groups ...[]string) int {
	for i := 0; i < len(rows) && i < maxScan; i++ {
		found := true
		for _, g := range groups {
			if Column(rows[i], 0, g...) < 0 {
				found = false
				break
			}
		}
		if found {
			return i
		}
	}
	return -1
}

// Cell devuelve la celda idx de la fila sin espacios laterales; vacío si no existe.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// Quantity interpreta una celda numérica ("10", "10.0", "10,5"); vacío, inválido o negativo da 0.
func Quantity(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}

// Bool interpreta celdas tipo SIM/NÃO, TRUE/FALSE, X.
func Bool(s string) bool {
	switch textnorm.Fold(s) {
	case "sim", "s", "true", "x", "1", "yes":
		return true
	}
	return false
}
