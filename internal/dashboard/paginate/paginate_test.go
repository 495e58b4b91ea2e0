package paginate_test

import (
	"testing"

	"fleet-admin/internal/dashboard/paginate"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count, size, want int
	}{
		{25, 10, 3},
		{30, 10, 3},
		{31, 10, 4},
		{0, 10, 1},
		{5, 10, 1},
		{5, 0, 1},
	}
	for _, c := range cases {
		if got := paginate.TotalPages(c.count, c.size); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.count, c.size, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	w := paginate.Clamp(25, paginate.Window{Page: 7, Size: 10})
	if w.Page != 3 {
		t.Errorf("page beyond end: got %d, want 3", w.Page)
	}

	w = paginate.Clamp(25, paginate.Window{Page: 0, Size: 10})
	if w.Page != 1 {
		t.Errorf("page below 1: got %d, want 1", w.Page)
	}

	w = paginate.Clamp(0, paginate.Window{Page: 4, Size: 10})
	if w.Page != 1 {
		t.Errorf("empty view: got %d, want 1", w.Page)
	}
}

func TestSlice(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	page := paginate.Slice(items, paginate.Window{Page: 3, Size: 10})
	if len(page) != 5 {
		t.Fatalf("last page length %d, want 5", len(page))
	}
	if page[0] != 20 || page[4] != 24 {
		t.Fatalf("last page contents %v", page)
	}

	page = paginate.Slice(items, paginate.Window{Page: 1, Size: 10})
	if len(page) != 10 || page[0] != 0 {
		t.Fatalf("first page contents %v", page)
	}

	// A page past the end clamps to the last page instead of erroring.
	page = paginate.Slice(items, paginate.Window{Page: 99, Size: 10})
	if len(page) != 5 || page[0] != 20 {
		t.Fatalf("clamped page contents %v", page)
	}

	if got := paginate.Slice([]int{}, paginate.Window{Page: 1, Size: 10}); len(got) != 0 {
		t.Fatalf("empty sequence produced %v", got)
	}
}
