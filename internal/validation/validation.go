// Package validation checks driver onboarding drafts against the document
// formats the platform requires (Indian mobile, vehicle registration,
// driving licence, Aadhaar, PAN, IFSC). It is shared by the dashboard client,
// which gates submission, and the admin service, which re-validates on create.
package validation

import (
	"regexp"
	"strings"
)

const MinWalletAmount = 1000

var (
	phoneRegex   = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	vehicleRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z]{1,2}[0-9]{4}$`)
	licenseRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[0-9]{4}[0-9]{7}$`)
	aadharRegex  = regexp.MustCompile(`^\d{12}$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	ifscRegex    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
)

// Errors maps a form field to a human-readable message. A draft is valid iff
// the map is empty.
type Errors map[string]string

// DriverDraft is an unsaved driver pending validation and submission.
type DriverDraft struct {
	Name            string
	Phone           string
	Email           string
	VehicleNumber   string
	LicenseNumber   string
	AadharNumber    string
	PanNumber       string
	IfscCode        string
	BankAccount     string
	MinWalletAmount float64
}

// Validate runs every field rule independently, so multiple errors can
// co-occur. It performs no I/O.
func Validate(draft DriverDraft, files Attachments) Errors {
	errs := Errors{}

	if strings.TrimSpace(draft.Name) == "" {
		errs["name"] = "name is required"
	}

	if draft.Phone == "" {
		errs["phone"] = "phone is required"
	} else if !phoneRegex.MatchString(draft.Phone) {
		errs["phone"] = "enter a valid 10-digit mobile number"
	}

	if draft.Email != "" && !emailRegex.MatchString(draft.Email) {
		errs["email"] = "enter a valid email address"
	}

	if draft.VehicleNumber == "" {
		errs["vehicleNumber"] = "vehicle number is required"
	} else if !vehicleRegex.MatchString(strings.ToUpper(draft.VehicleNumber)) {
		errs["vehicleNumber"] = "enter a valid vehicle number (e.g. TN01AB1234)"
	}

	if draft.LicenseNumber == "" {
		errs["licenseNumber"] = "license number is required"
	} else if !licenseRegex.MatchString(strings.ToUpper(draft.LicenseNumber)) {
		errs["licenseNumber"] = "enter a valid license number (e.g. TN0120201234567)"
	}

	if draft.AadharNumber == "" {
		errs["aadharNumber"] = "aadhaar number is required"
	} else if !aadharRegex.MatchString(draft.AadharNumber) {
		errs["aadharNumber"] = "aadhaar must be exactly 12 digits"
	}

	if draft.PanNumber != "" && !panRegex.MatchString(strings.ToUpper(draft.PanNumber)) {
		errs["panNumber"] = "enter a valid PAN (e.g. ABCDE1234F)"
	}

	if draft.IfscCode != "" && !ifscRegex.MatchString(strings.ToUpper(draft.IfscCode)) {
		errs["ifscCode"] = "enter a valid IFSC code (e.g. SBIN0001234)"
	}

	if len(files.License) < 1 {
		errs["licenseFiles"] = "attach at least one license document"
	}
	if len(files.Aadhaar) < 1 {
		errs["aadhaarFiles"] = "attach at least one aadhaar document"
	}
	if len(files.RC) < 1 {
		errs["rcFiles"] = "attach at least one RC document"
	}

	if draft.MinWalletAmount < MinWalletAmount {
		errs["minWalletAmount"] = "minimum wallet amount is 1000"
	}

	return errs
}
