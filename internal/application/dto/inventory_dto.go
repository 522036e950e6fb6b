package dto

import "time"

// CreateMaterialRequest alta rápida de material. La cantidad inicia en 0; la ajustan los movimientos.
type CreateMaterialRequest struct {
	Name               string `json:"name"`
	Unit               string `json:"unit"`
	CompatibleVehicles string `json:"compatible_vehicles"`
}

// UpdateMaterialRequest edición de material. No incluye cantidad: se maneja vía movimientos.
type UpdateMaterialRequest struct {
	Name               *string `json:"name"`
	Unit               *string `json:"unit"`
	CompatibleVehicles *string `json:"compatible_vehicles"`
}

// MaterialResponse salida de un material con su estado derivado.
type MaterialResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Quantity           int64     `json:"quantity"`
	Unit               string    `json:"unit"`
	CompatibleVehicles string    `json:"compatible_vehicles"`
	Status             string    `json:"status"` // NONE, LOW, NORMAL
	CreatedAt          time.Time `json:"created_at"`
}

// MaterialListQuery filtros y orden del listado de materiales.
type MaterialListQuery struct {
	Status string `query:"status"` // ALL (vacío), NONE, LOW, NORMAL
	Search string `query:"search"`
	Sort   string `query:"sort"` // name, quantity, status, unit
	Dir    string `query:"dir"`  // asc, desc
}

// MaterialListResponse listado de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Total int                `json:"total"`
}

// RegisterMovementRequest body para POST/PUT /api/movements.
// CreatedAt acepta YYYY-MM-DD o RFC3339; vacío en el alta usa el momento actual.
type RegisterMovementRequest struct {
	MaterialID    string `json:"material_id"`
	Type          string `json:"type"` // ENTRADA o SAIDA
	Quantity      int64  `json:"quantity"`
	Requester     string `json:"requester,omitempty"`
	VehiclePrefix string `json:"vehicle_prefix,omitempty"`
	GuideNumber   string `json:"guide_number,omitempty"`
	Observation   string `json:"observation,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// MovementResponse salida de un movimiento con los datos del material unidos.
type MovementResponse struct {
	ID            string    `json:"id"`
	MaterialID    string    `json:"material_id"`
	MaterialName  string    `json:"material_name"`
	MaterialUnit  string    `json:"material_unit"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	Requester     string    `json:"requester,omitempty"`
	VehiclePrefix string    `json:"vehicle_prefix,omitempty"`
	GuideNumber   string    `json:"guide_number,omitempty"`
	Observation   string    `json:"observation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovementListQuery filtros del listado de movimientos.
type MovementListQuery struct {
	MaterialID string `query:"material_id"`
	Type       string `query:"type"`
	Search     string `query:"search"` // material, responsable, prefijo o guía
}

// MovementListResponse listado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
