package dto

import "time"

// Driver event kinds published to the broker and fanned out to dashboard
// websocket subscribers.
const (
	EventDriverStatus = "driver_status"
	EventDriverWallet = "driver_wallet"
	EventDriverJoined = "driver_joined"
)

type DriverEvent struct {
	Type     string    `json:"type"`
	DriverID string    `json:"driverId"`
	Name     string    `json:"name,omitempty"`
	Status   string    `json:"status,omitempty"`
	Wallet   float64   `json:"wallet,omitempty"`
	At       time.Time `json:"at"`
}
