package dto

import "fleet-admin/internal/admin-service/core/domain/models"

type LoginData struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type StatusData struct {
	Status string `json:"status"`
}

type WalletData struct {
	Wallet      float64 `json:"wallet"`
	AddedAmount float64 `json:"addedAmount"`
}

type UsersPage struct {
	Users []models.User
	Total int
}

// Overview feeds the sales / live-data dashboard tiles.
type Overview struct {
	TotalDrivers   int            `json:"totalDrivers"`
	LiveDrivers    int            `json:"liveDrivers"`
	OfflineDrivers int            `json:"offlineDrivers"`
	TotalUsers     int            `json:"totalUsers"`
	WalletTotal    float64        `json:"walletTotal"`
	TotalRides     int            `json:"totalRides"`
	DriversByType  map[string]int `json:"driversByType"`
}
