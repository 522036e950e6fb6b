package dto

// DashboardSummary contadores de la pantalla inicial.
type DashboardSummary struct {
	Stock         StockSummary        `json:"stock"`
	Schedules     ScheduleSummary     `json:"schedules"`
	Pav           PavSummary          `json:"pav"`
	Substitutions SubstitutionSummary `json:"substitutions"`
	DateLabel     string              `json:"date_label"` // ej. "Maio 2026"
}

// StockSummary materiales por estado derivado.
type StockSummary struct {
	Total  int `json:"total"`
	None   int `json:"none"`
	Low    int `json:"low"`
	Normal int `json:"normal"`
}

// ScheduleSummary reservas que todavía no terminaron.
type ScheduleSummary struct {
	Upcoming int `json:"upcoming"`
	Today    int `json:"today"` // empiezan hoy
}

// PavSummary procesos enviados o no al encargado.
type PavSummary struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

// SubstitutionSummary avance de las sustituciones.
type SubstitutionSummary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}
