package validation_test

import (
	"testing"

	"fleet-admin/internal/validation"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"98765 43210", "9876543210"},
		{"+91-9876543210", "9198765432"}, // country code counts toward the cap
		{"98765", "98765"},
		{"abc", ""},
	}
	for _, c := range cases {
		if got := validation.FormatPhone(c.in); got != c.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatAadhaar(t *testing.T) {
	if got := validation.FormatAadhaar("1234 5678 9012"); got != "123456789012" {
		t.Errorf("got %q", got)
	}
	if got := validation.FormatAadhaar("12345678901234"); got != "123456789012" {
		t.Errorf("truncation failed: %q", got)
	}
}

func TestFormatCode(t *testing.T) {
	cases := []struct{ in, want string }{
		{"tn 01 ab 1234", "TN01AB1234"},
		{"sbin0001234", "SBIN0001234"},
		{"ABCDE1234F", "ABCDE1234F"},
	}
	for _, c := range cases {
		if got := validation.FormatCode(c.in); got != c.want {
			t.Errorf("FormatCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
