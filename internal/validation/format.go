package validation

import "strings"

// Formatting helpers normalize raw keystrokes before validation. They are
// pure functions, not validators: the result still has to pass Validate.

// FormatPhone strips non-digits and truncates to 10 digits.
func FormatPhone(raw string) string {
	return digitsOnly(raw, 10)
}

// FormatAadhaar strips non-digits and truncates to 12 digits.
func FormatAadhaar(raw string) string {
	return digitsOnly(raw, 12)
}

// FormatCode uppercases and strips whitespace. Used for vehicle, license,
// PAN and IFSC input.
func FormatCode(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func digitsOnly(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == max {
			break
		}
	}
	return b.String()
}
