package store_test

import (
	"testing"

	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/dashboard/store"
)

func seedDrivers() *store.DriverStore {
	s := store.NewDriverStore()
	s.Replace([]models.Driver{
		{ID: "d1", Name: "Ravi", Status: "Live", Wallet: 500},
		{ID: "d2", Name: "Suresh", Status: "Offline", Wallet: 1200},
	})
	return s
}

func TestDriverStore_ApplyStatusPatchesOnlyTarget(t *testing.T) {
	s := seedDrivers()

	if !s.ApplyStatus("d2", "Live") {
		t.Fatal("known id not matched")
	}
	records := s.Records()
	if records[1].Status != "Live" {
		t.Errorf("d2 status = %q", records[1].Status)
	}
	if records[0].Status != "Live" || records[0].Wallet != 500 {
		t.Errorf("d1 changed: %+v", records[0])
	}

	if s.ApplyStatus("missing", "Offline") {
		t.Error("unknown id reported as patched")
	}
}

func TestDriverStore_ApplyWalletUsesServerBalance(t *testing.T) {
	s := seedDrivers()

	// Local wallet is 500 and 200 was added, but the server says 720
	// (another credit landed elsewhere). The displayed balance must be the
	// server's number, not 500+200.
	if !s.ApplyWallet("d1", 720) {
		t.Fatal("known id not matched")
	}
	if got := s.Records()[0].Wallet; got != 720 {
		t.Errorf("wallet = %v, want 720", got)
	}
	if got := s.Records()[1].Wallet; got != 1200 {
		t.Errorf("other record changed: %v", got)
	}
}

func TestUserStore_ApplyAndRemove(t *testing.T) {
	s := store.NewUserStore()
	s.Replace([]models.User{
		{ID: "u1", Name: "Meena"},
		{ID: "u2", Name: "Raj"},
		{ID: "u3", Name: "Kavya"},
	}, 30)

	if !s.ApplyUser(models.User{ID: "u2", Name: "Raj Kumar"}) {
		t.Fatal("known user not matched")
	}
	if s.Records()[1].Name != "Raj Kumar" {
		t.Errorf("update not applied: %+v", s.Records()[1])
	}

	if !s.Remove("u1") {
		t.Fatal("known user not removed")
	}
	if len(s.Records()) != 2 || s.Records()[0].ID != "u2" || s.Records()[1].ID != "u3" {
		t.Errorf("order after removal: %+v", s.Records())
	}
	if s.Total() != 29 {
		t.Errorf("total = %d, want 29", s.Total())
	}

	if s.Remove("missing") {
		t.Error("unknown user reported as removed")
	}
}
