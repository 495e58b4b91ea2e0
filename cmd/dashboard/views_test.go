package main

import (
	"fmt"
	"testing"

	"fleet-admin/internal/admin-service/core/domain/models"
	"fleet-admin/internal/dashboard/store"
)

func seedView(n int) *DriverView {
	records := make([]models.Driver, n)
	for i := range records {
		records[i] = models.Driver{
			ID:     fmt.Sprintf("d%02d", i),
			Name:   fmt.Sprintf("Driver %02d", i),
			Status: "Live",
		}
	}
	s := store.NewDriverStore()
	s.Replace(records)
	return NewDriverView(s, 10)
}

func TestDriverView_FilterChangeResetsPage(t *testing.T) {
	view := seedView(25)
	view.SetPage(3)

	if _, _, w := view.Visible(); w.Page != 3 {
		t.Fatalf("page = %d, want 3", w.Page)
	}

	view.SetSearch("driver")
	if _, _, w := view.Visible(); w.Page != 1 {
		t.Fatalf("page after search change = %d, want 1", w.Page)
	}

	view.SetPage(2)
	view.SetCriterion("status", "live")
	if _, _, w := view.Visible(); w.Page != 1 {
		t.Fatalf("page after criterion change = %d, want 1", w.Page)
	}
}

func TestUserView_ClampPage(t *testing.T) {
	s := store.NewUserStore()
	s.Replace(nil, 42)
	view := NewUserView(s, 10)

	view.Page = 99
	if got := view.ClampPage(); got != 5 {
		t.Fatalf("page past end shows %d, want 5", got)
	}

	view.Page = 0
	if got := view.ClampPage(); got != 1 {
		t.Fatalf("page below 1 shows %d, want 1", got)
	}

	view.Page = 3
	if got := view.ClampPage(); got != 3 {
		t.Fatalf("in-range page shows %d, want 3", got)
	}
}

func TestDriverView_PaginatesFilteredSet(t *testing.T) {
	view := seedView(25)

	visible, count, w := view.Visible()
	if count != 25 || len(visible) != 10 || w.Page != 1 {
		t.Fatalf("page 1: count=%d len=%d page=%d", count, len(visible), w.Page)
	}

	view.SetPage(3)
	visible, _, _ = view.Visible()
	if len(visible) != 5 {
		t.Fatalf("last page length = %d, want 5", len(visible))
	}

	// Narrow to a single record: the stale page 3 clamps back to 1.
	view.SetPage(3)
	view.SetCriterion("name", "driver 07")
	visible, count, w = view.Visible()
	if count != 1 || len(visible) != 1 || w.Page != 1 {
		t.Fatalf("filtered: count=%d len=%d page=%d", count, len(visible), w.Page)
	}
	if visible[0].ID != "d07" {
		t.Fatalf("record = %+v", visible[0])
	}
}
