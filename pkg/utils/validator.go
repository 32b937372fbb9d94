package utils

import (
	"fmt"
	"regexp"
	"time"
)

var contactRegex = regexp.MustCompile(`^[0-9]{10}$`)

// ValidateContactNumber checks that a phone number is exactly ten digits,
// the format the booking form collects for WhatsApp and calling numbers.
func ValidateContactNumber(number string) error {
	if !contactRegex.MatchString(number) {
		return fmt.Errorf("contact number must be 10 digits: %s", number)
	}
	return nil
}

// ParseFormDate parses a date in the form's YYYY-MM-DD layout.
func ParseFormDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid form date %q: %w", value, err)
	}
	return t, nil
}

// SanitizeString removes control characters before a value is written to
// the register workbook or the database.
func SanitizeString(s string) string {
	return regexp.MustCompile(`[\x00-\x1f\x7f]`).ReplaceAllString(s, "")
}
