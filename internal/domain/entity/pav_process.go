package entity

import "time"

// PavProcess proceso administrativo de accidente con viatura (PAV).
type PavProcess struct {
	ID               string
	Fraction         string
	VehiclePrefix    string
	VehiclePlate     string
	AccidentDate     *time.Time
	RedsNumber       string
	PavNumber        string
	Inquirer         string
	InquirerPMNumber string
	SentToInquirer   bool
	OSRequestDate    *time.Time
	OSNumber         string
	OSFollowupDate   *time.Time
	Observations     string
	CreatedAt        time.Time
}
