package dto

import "time"

// ScheduleRequest alta o edición simple de una reserva. Fechas YYYY-MM-DD, horas HH:MM.
type ScheduleRequest struct {
	VehiclePrefix string `json:"vehicle_prefix"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	StartHour     string `json:"start_hour"`
	EndHour       string `json:"end_hour"`
	DriverName    string `json:"driver_name"`
	Reason        string `json:"reason"`
	Observations  string `json:"observations"`
	Force         bool   `json:"force"` // guardar aunque haya conflicto
}

// BatchScheduleRequest alta de la misma franja horaria en varias fechas.
type BatchScheduleRequest struct {
	VehiclePrefix string   `json:"vehicle_prefix"`
	Dates         []string `json:"dates"`
	StartHour     string   `json:"start_hour"`
	EndHour       string   `json:"end_hour"`
	DriverName    string   `json:"driver_name"`
	Reason        string   `json:"reason"`
	Observations  string   `json:"observations"`
	Force         bool     `json:"force"`
}

// ReassignVehicleRequest cambia la viatura de las reservas seleccionadas.
type ReassignVehicleRequest struct {
	IDs           []string `json:"ids"`
	VehiclePrefix string   `json:"vehicle_prefix"`
	Force         bool     `json:"force"`
}

// ReassignTimeRequest cambia solo las horas de las reservas seleccionadas; cada una conserva su fecha.
type ReassignTimeRequest struct {
	IDs       []string `json:"ids"`
	StartHour string   `json:"start_hour"`
	EndHour   string   `json:"end_hour"`
	Force     bool     `json:"force"`
}

// IDsRequest lista de ids (borrado múltiple).
type IDsRequest struct {
	IDs []string `json:"ids"`
}

// ScheduleResponse salida de una reserva.
type ScheduleResponse struct {
	ID            string    `json:"id"`
	VehiclePrefix string    `json:"vehicle_prefix"`
	DriverName    string    `json:"driver_name"`
	Reason        string    `json:"reason"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Observations  string    `json:"observations"`
	CreatedAt     time.Time `json:"created_at"`
}

// ScheduleListQuery filtros de la agenda.
type ScheduleListQuery struct {
	View   string `query:"view"`   // FUTURE (por defecto) o ALL
	Date   string `query:"date"`   // YYYY-MM-DD, día de inicio
	Search string `query:"search"` // prefijo o conductor
}

// ScheduleListResponse listado de reservas.
type ScheduleListResponse struct {
	Items []ScheduleResponse `json:"items"`
	Total int                `json:"total"`
}

// ScheduleBatchResponse resultado de una operación en lote.
type ScheduleBatchResponse struct {
	Items  []ScheduleResponse `json:"items"`
	Forced bool               `json:"forced"`
}

// ScheduleConflictDetails detalle de un conflicto para decidir si forzar.
type ScheduleConflictDetails struct {
	VehiclePrefix string           `json:"vehicle_prefix"`
	Date          string           `json:"date,omitempty"`
	ScheduleID    string           `json:"schedule_id,omitempty"`
	Conflicting   ScheduleResponse `json:"conflicting"`
}

// BatchFailureDetails lote interrumpido a mitad de camino: Committed ya quedó guardado.
type BatchFailureDetails struct {
	Committed []string                 `json:"committed"`
	FailedID  string                   `json:"failed_id"`
	Conflict  *ScheduleConflictDetails `json:"conflict,omitempty"` // si se cortó por un conflicto nuevo
}
