package dto

import "time"

// VehicleRequest alta o edición de viatura.
type VehicleRequest struct {
	Prefix   string `json:"prefix"`
	Plate    string `json:"plate"`
	Model    string `json:"model"`
	Fraction string `json:"fraction"`
}

// VehicleResponse salida de una viatura.
type VehicleResponse struct {
	ID        string    `json:"id"`
	Prefix    string    `json:"prefix"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	Fraction  string    `json:"fraction"`
	CreatedAt time.Time `json:"created_at"`
}

// VehicleListResponse listado de viaturas.
type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Total int               `json:"total"`
}

// PavProcessRequest alta o edición de proceso PAV. Fechas YYYY-MM-DD; vacías = null.
type PavProcessRequest struct {
	Fraction         string `json:"fraction"`
	VehiclePrefix    string `json:"vehicle_prefix"`
	VehiclePlate     string `json:"vehicle_plate"`
	AccidentDate     string `json:"accident_date"`
	RedsNumber       string `json:"reds_number"`
	PavNumber        string `json:"pav_number"`
	Inquirer         string `json:"inquirer"`
	InquirerPMNumber string `json:"inquirer_pm_number"`
	SentToInquirer   bool   `json:"sent_to_inquirer"`
	OSRequestDate    string `json:"os_request_date"`
	OSNumber         string `json:"os_number"`
	OSFollowupDate   string `json:"os_followup_date"`
	Observations     string `json:"observations"`
}

// PavProcessResponse salida de un proceso PAV.
type PavProcessResponse struct {
	ID               string     `json:"id"`
	Fraction         string     `json:"fraction"`
	VehiclePrefix    string     `json:"vehicle_prefix"`
	VehiclePlate     string     `json:"vehicle_plate"`
	AccidentDate     *time.Time `json:"accident_date"`
	RedsNumber       string     `json:"reds_number"`
	PavNumber        string     `json:"pav_number"`
	Inquirer         string     `json:"inquirer"`
	InquirerPMNumber string     `json:"inquirer_pm_number"`
	SentToInquirer   bool       `json:"sent_to_inquirer"`
	OSRequestDate    *time.Time `json:"os_request_date"`
	OSNumber         string     `json:"os_number"`
	OSFollowupDate   *time.Time `json:"os_followup_date"`
	Observations     string     `json:"observations"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PavProcessListResponse listado de procesos PAV.
type PavProcessListResponse struct {
	Items []PavProcessResponse `json:"items"`
	Total int                  `json:"total"`
}

// SubstitutionRequest alta o edición de sustitución de flota.
type SubstitutionRequest struct {
	ReceivedPrefix  string `json:"received_prefix"`
	ReceivedPlate   string `json:"received_plate"`
	ReceivedModel   string `json:"received_model"`
	ReceivedBGPM    string `json:"received_bgpm"`
	ReceivedCity    string `json:"received_city"`
	ReceivedUnit    string `json:"received_unit"`
	IndicatedPrefix string `json:"indicated_prefix"`
	IndicatedPlate  string `json:"indicated_plate"`
	NotRequired     bool   `json:"not_required"`
	Force           bool   `json:"force"` // guardar aunque la placa esté repetida
}

// SubstitutionResponse salida de una sustitución con marcas de placa repetida.
type SubstitutionResponse struct {
	ID                 string    `json:"id"`
	ReceivedPrefix     string    `json:"received_prefix"`
	ReceivedPlate      string    `json:"received_plate"`
	ReceivedModel      string    `json:"received_model"`
	ReceivedBGPM       string    `json:"received_bgpm"`
	ReceivedCity       string    `json:"received_city"`
	ReceivedUnit       string    `json:"received_unit"`
	IndicatedPrefix    *string   `json:"indicated_prefix"`
	IndicatedPlate     *string   `json:"indicated_plate"`
	NotRequired        bool      `json:"not_required"`
	ReceivedDuplicate  bool      `json:"received_duplicate"`
	IndicatedDuplicate bool      `json:"indicated_duplicate"`
	CreatedAt          time.Time `json:"created_at"`
}

// SubstitutionListResponse listado de sustituciones.
type SubstitutionListResponse struct {
	Items     []SubstitutionResponse `json:"items"`
	Total     int                    `json:"total"`
	Pending   int                    `json:"pending"`
	Completed int                    `json:"completed"`
}

// DuplicatePlateDetails detalle del aviso de placa repetida.
type DuplicatePlateDetails struct {
	Plate string `json:"plate"`
	Side  string `json:"side"` // RECEIVED o INDICATED
}

// VehicleListQuery búsqueda por prefijo o placa.
type VehicleListQuery struct {
	Search string `query:"search"`
}

// PavListQuery filtros del listado de procesos PAV.
type PavListQuery struct {
	Search   string `query:"search"`   // prefijo, placa, REDS, PAV, encargado o número PM
	Status   string `query:"status"`   // ALL, SENT, PENDING
	Fraction string `query:"fraction"` // fracción exacta
}

// SubstitutionListQuery filtros del listado de sustituciones.
type SubstitutionListQuery struct {
	Search string `query:"search"` // prefijo, placa o BGPM recibidos
	City   string `query:"city"`
	Unit   string `query:"unit"`
	Status string `query:"status"` // ALL, DONE, PENDING, NOT_REQUIRED
}
