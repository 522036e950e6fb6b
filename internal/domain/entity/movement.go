package entity

import "time"

// Tipos de movimiento. Los valores coinciden con los persistidos en la tabla movements.
const (
	MovementTypeEntry = "ENTRADA" // suma a la cantidad del material
	MovementTypeExit  = "SAIDA"   // resta de la cantidad del material
)

// Movement representa una transacción de stock (entrada o salida) sobre un Material.
// Requester y VehiclePrefix solo son obligatorios en salidas.
type Movement struct {
	ID            string
	MaterialID    string
	Type          string
	Quantity      int64 // siempre positivo; el signo lo da Type
	Requester     string
	VehiclePrefix string
	GuideNumber   string
	Observation   string
	CreatedAt     time.Time // fecha del movimiento
}

// IsValidMovementType informa si t es ENTRADA o SAIDA.
func IsValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}
