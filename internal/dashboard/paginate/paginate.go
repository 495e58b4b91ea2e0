// Package paginate slices filtered views into fixed-size, 1-based pages.
package paginate

type Window struct {
	Page int
	Size int
}

// TotalPages is max(1, ceil(count/size)), so an empty view still has one
// (empty) page to land on.
func TotalPages(count, size int) int {
	if size < 1 {
		return 1
	}
	pages := (count + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp pulls an out-of-range page number back to the nearest valid page.
func Clamp(count int, w Window) Window {
	if w.Size < 1 {
		w.Size = 1
	}
	total := TotalPages(count, w.Size)
	if w.Page < 1 {
		w.Page = 1
	}
	if w.Page > total {
		w.Page = total
	}
	return w
}

// Bounds returns the half-open index range [(page-1)*size, page*size) of the
// window after clamping, cut to the sequence length.
func Bounds(count int, w Window) (int, int) {
	if count == 0 {
		return 0, 0
	}
	w = Clamp(count, w)

	lo := (w.Page - 1) * w.Size
	hi := lo + w.Size
	if hi > count {
		hi = count
	}
	return lo, hi
}

// Slice applies the window to a sequence.
func Slice[T any](items []T, w Window) []T {
	lo, hi := Bounds(len(items), w)
	return items[lo:hi]
}
