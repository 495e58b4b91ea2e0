package validation

import "fmt"

// Per-category attachment caps.
const (
	MaxLicenseFiles = 2
	MaxAadhaarFiles = 2
	MaxRCFiles      = 7

	MaxFileSize = 5 << 20 // 5 MiB
)

var allowedMediaTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// FileMeta describes one attached document.
type FileMeta struct {
	Name      string
	MediaType string
	Size      int64
}

// Attachments holds the document-file lists attached to a driver draft.
type Attachments struct {
	License []FileMeta
	Aadhaar []FileMeta
	RC      []FileMeta
}

// CheckSelection enforces the selection-time constraints for one category:
// count cap, media type and size. A failure rejects the whole new selection;
// the caller keeps whatever was previously attached.
func CheckSelection(category string, selection []FileMeta) error {
	limit, err := categoryCap(category)
	if err != nil {
		return err
	}
	if len(selection) > limit {
		return fmt.Errorf("%s: at most %d files allowed", category, limit)
	}
	for _, f := range selection {
		if !allowedMediaTypes[f.MediaType] {
			return fmt.Errorf("%s: %s must be a JPEG, PNG or PDF", category, f.Name)
		}
		if f.Size > MaxFileSize {
			return fmt.Errorf("%s: %s exceeds the 5 MB limit", category, f.Name)
		}
	}
	return nil
}

func categoryCap(category string) (int, error) {
	switch category {
	case "license":
		return MaxLicenseFiles, nil
	case "aadhaar":
		return MaxAadhaarFiles, nil
	case "rc":
		return MaxRCFiles, nil
	}
	return 0, fmt.Errorf("unknown document category %q", category)
}
