// Package filter narrows the dashboard's record views with a free-text
// search plus per-field substring criteria. Filtering is stable: output
// preserves store order.
package filter

import (
	"strings"

	"fleet-admin/internal/admin-service/core/domain/models"
)

// Criteria maps a field name to a substring pattern. Empty values are
// ignored; an empty map matches everything.
type Criteria map[string]string

var driverFields = map[string]func(models.Driver) string{
	"name":          func(d models.Driver) string { return d.Name },
	"phone":         func(d models.Driver) string { return d.Phone },
	"email":         func(d models.Driver) string { return d.Email },
	"vehicleType":   func(d models.Driver) string { return d.VehicleType },
	"vehicleNumber": func(d models.Driver) string { return d.VehicleNumber },
	"licenseNumber": func(d models.Driver) string { return d.LicenseNumber },
	"status":        func(d models.Driver) string { return d.Status },
}

// Drivers returns the subset where the search term matches any of
// {name, identifier, phone, vehicle number} and every non-empty criterion
// matches its field, all case-insensitive substring checks.
func Drivers(records []models.Driver, search string, criteria Criteria) []models.Driver {
	search = strings.ToLower(strings.TrimSpace(search))

	var out []models.Driver
	for _, d := range records {
		if search != "" && !matchesSearch(d, search) {
			continue
		}
		if !matchesCriteria(d, criteria) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesSearch(d models.Driver, search string) bool {
	for _, field := range []string{d.Name, d.ID, d.Phone, d.VehicleNumber} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func matchesCriteria(d models.Driver, criteria Criteria) bool {
	for field, pattern := range criteria {
		if pattern == "" {
			continue
		}
		get, known := driverFields[field]
		// An unknown field matches nothing: an empty view is easier to
		// notice than a silently ignored filter.
		if !known {
			return false
		}
		if !strings.Contains(strings.ToLower(get(d)), strings.ToLower(pattern)) {
			return false
		}
	}
	return true
}

var userFields = map[string]func(models.User) string{
	"name":       func(u models.User) string { return u.Name },
	"phone":      func(u models.User) string { return u.Phone },
	"email":      func(u models.User) string { return u.Email },
	"address":    func(u models.User) string { return u.Address },
	"customerId": func(u models.User) string { return u.CustomerID },
}

// Users filters the user view the same way Drivers filters drivers; the
// search term covers {name, identifier, phone, customer identifier}.
func Users(records []models.User, search string, criteria Criteria) []models.User {
	search = strings.ToLower(strings.TrimSpace(search))

	var out []models.User
	for _, u := range records {
		if search != "" && !userMatchesSearch(u, search) {
			continue
		}
		if !userMatchesCriteria(u, criteria) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func userMatchesSearch(u models.User, search string) bool {
	for _, field := range []string{u.Name, u.ID, u.Phone, u.CustomerID} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func userMatchesCriteria(u models.User, criteria Criteria) bool {
	for field, pattern := range criteria {
		if pattern == "" {
			continue
		}
		get, known := userFields[field]
		if !known {
			return false
		}
		if !strings.Contains(strings.ToLower(get(u)), strings.ToLower(pattern)) {
			return false
		}
	}
	return true
}
