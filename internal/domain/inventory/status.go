package inventory

// LowStockThreshold cantidad a partir de la cual el stock se considera normal. Fijo.
const LowStockThreshold = 5

// StockStatus estado derivado de la cantidad de un material.
type StockStatus string

const (
	StatusNone   StockStatus = "NONE"
	StatusLow    StockStatus = "LOW"
	StatusNormal StockStatus = "NORMAL"
)

// Status NONE para cantidad <= 0 (el saldo puede quedar negativo), LOW por debajo del umbral, NORMAL en otro caso.
func Status(quantity int64) StockStatus {
	switch {
	case quantity <= 0:
		return StatusNone
	case quantity < LowStockThreshold:
		return StatusLow
	default:
		return StatusNormal
	}
}

// ParseStatus convierte el filtro de la API. ok=false para valores desconocidos.
func ParseStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StatusNone, StatusLow, StatusNormal:
		return StockStatus(s), true
	}
	return "", false
}

// Rank orden usado al ordenar por estado (NONE < LOW < NORMAL).
func (s StockStatus) Rank() int {
	switch s {
	case StatusNone:
		return 0
	case StatusLow:
		return 1
	default:
		return 2
	}
}
