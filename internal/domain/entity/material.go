package entity

import "time"

// DefaultUnit unidad de medida cuando el formulario o la planilla no la informan.
const DefaultUnit = "Unidade"

// Material representa un ítem del almacén.
// Quantity es derivada: solo cambia como efecto de registrar, editar o eliminar movimientos.
type Material struct {
	ID                 string
	Name               string
	Quantity           int64
	Unit               string
	CompatibleVehicles string
	CreatedAt          time.Time
}
