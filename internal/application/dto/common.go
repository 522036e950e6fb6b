package dto

// ErrorResponse cuerpo de error HTTP. Details lleva datos accionables (por ejemplo la reserva en conflicto).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ImportResult resumen de una importación de planilla.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
