package entity

import "time"

// FleetSubstitution registro de viatura recibida y, opcionalmente, la viatura indicada para baja.
type FleetSubstitution struct {
	ID              string
	ReceivedPrefix  string
	ReceivedPlate   string
	ReceivedModel   string
	ReceivedBGPM    string
	ReceivedCity    string
	ReceivedUnit    string
	IndicatedPrefix string
	IndicatedPlate  string
	NotRequired     bool
	CreatedAt       time.Time
}
