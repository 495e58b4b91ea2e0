package dto

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DriverCreateRequest mirrors the add-driver form. Identifier, wallet and
// status are not accepted from the client; the backend generates them.
type DriverCreateRequest struct {
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email,omitempty"`
	VehicleType     string  `json:"vehicleType"`
	VehicleNumber   string  `json:"vehicleNumber"`
	LicenseNumber   string  `json:"licenseNumber"`
	AadharNumber    string  `json:"aadharNumber"`
	PanNumber       string  `json:"panNumber,omitempty"`
	IfscCode        string  `json:"ifscCode,omitempty"`
	BankAccount     string  `json:"bankAccount,omitempty"`
	MinWalletAmount float64 `json:"minWalletAmount"`
}

type WalletRequest struct {
	Amount float64 `json:"amount"`
}

type UserUpdateRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}
