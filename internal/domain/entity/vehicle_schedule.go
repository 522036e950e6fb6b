package entity

import "time"

// VehicleSchedule reserva de una viatura por un conductor en una ventana [StartTime, EndTime).
type VehicleSchedule struct {
	ID            string
	VehiclePrefix string
	DriverName    string
	Reason        string
	StartTime     time.Time
	EndTime       time.Time
	Observations  string
	CreatedAt     time.Time
}
