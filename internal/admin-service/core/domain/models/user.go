package models

import "time"

type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	Wallet      float64   `json:"wallet"`
	CustomerID  string    `json:"customerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Admin struct {
	ID           string
	Email        string
	PasswordHash []byte
	Role         string
}
