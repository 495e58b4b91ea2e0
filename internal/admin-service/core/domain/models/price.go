package models

// RidePrices is the per-vehicle-type price-per-km configuration the dashboard
// edits. Sedan and mini bill at the taxi rate, so only three knobs exist.
type RidePrices struct {
	Bike float64 `json:"bike"`
	Taxi float64 `json:"taxi"`
	Port float64 `json:"port"`
}
