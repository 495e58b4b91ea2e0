// Package store holds the dashboard's in-memory record collections and the
// reconciliation rules that merge confirmed backend writes into them. Records
// are fetched wholesale and read-only apart from two local patches, status
// and wallet, both keyed by identifier.
package store

import "fleet-admin/internal/admin-service/core/domain/models"

type DriverStore struct {
	records []models.Driver
}

func NewDriverStore() *DriverStore {
	return &DriverStore{}
}

// Replace swaps the whole view after a refetch. The backend is the source of
// truth for generated fields, so creates always go through here.
func (s *DriverStore) Replace(records []models.Driver) {
	s.records = records
}

func (s *DriverStore) Records() []models.Driver {
	return s.records
}

func (s *DriverStore) Len() int {
	return len(s.records)
}

// ApplyStatus patches the status of exactly the matching record and reports
// whether a record matched. Other records are untouched.
func (s *DriverStore) ApplyStatus(id, status string) bool {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Status = status
			return true
		}
	}
	return false
}

// ApplyWallet overwrites the matching record's wallet with the balance the
// server returned. The caller must never pass a locally computed sum; a
// concurrent top-up elsewhere would make it drift.
func (s *DriverStore) ApplyWallet(id string, balance float64) bool {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Wallet = balance
			return true
		}
	}
	return false
}

type UserStore struct {
	records []models.User
	total   int
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Replace swaps in one server-side page of users plus the unpaged total.
func (s *UserStore) Replace(records []models.User, total int) {
	s.records = records
	s.total = total
}

func (s *UserStore) Records() []models.User {
	return s.records
}

func (s *UserStore) Total() int {
	return s.total
}

// ApplyUser replaces the matching record with its updated form.
func (s *UserStore) ApplyUser(updated models.User) bool {
	for i := range s.records {
		if s.records[i].ID == updated.ID {
			s.records[i] = updated
			return true
		}
	}
	return false
}

// Remove drops the matching record, preserving the order of the rest.
func (s *UserStore) Remove(id string) bool {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.total--
			return true
		}
	}
	return false
}
