package entity

import "time"

// Vehicle viatura de la flota. Prefix es la referencia usada por agendamientos.
type Vehicle struct {
	ID        string
	Prefix    string
	Plate     string
	Model     string
	Fraction  string // unidad / fracción a la que pertenece
	CreatedAt time.Time
}
