package models

import "time"

// Vehicle types supported by the platform.
const (
	VehiclePort  = "port"
	VehicleTaxi  = "taxi"
	VehicleBike  = "bike"
	VehicleSedan = "sedan"
	VehicleMini  = "mini"
)

// Driver availability states.
const (
	StatusLive    = "Live"
	StatusOffline = "Offline"
)

var AllowedVehicleTypes = map[string]bool{
	VehiclePort:  true,
	VehicleTaxi:  true,
	VehicleBike:  true,
	VehicleSedan: true,
	VehicleMini:  true,
}

type Driver struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	VehicleType   string    `json:"vehicleType"`
	VehicleNumber string    `json:"vehicleNumber"`
	LicenseNumber string    `json:"licenseNumber"`
	AadharNumber  string    `json:"aadharNumber"`
	PanNumber     string    `json:"panNumber,omitempty"`
	IfscCode      string    `json:"ifscCode,omitempty"`
	BankAccount   string    `json:"bankAccount,omitempty"`
	Wallet        float64   `json:"wallet"`
	Status        string    `json:"status"`
	Rating        float64   `json:"rating,omitempty"`
	TotalRides    int       `json:"totalRides"`
	CreatedAt     time.Time `json:"createdAt"`
}
