// Package phone validates and normalises Australian phone numbers.
//
// Two rules exist in the system and they serve different call paths:
// the strict regional format is the canonical intake rule, applied before
// anything is persisted; the lenient 10-15 digit bound only guards the
// E.164 conversion done right before an SMS is handed to the provider.
package phone

import (
	"errors"
	"regexp"
	"strings"
)

// Australian mobile or landline, with optional country code.
var auPattern = regexp.MustCompile(`^(\+?61|0)[2-9]\d{8}$`)

var stripper = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

var (
	ErrInvalidNumber = errors.New("invalid phone number")
	ErrBadLength     = errors.New("phone number must contain 10 to 15 digits")
)

// Normalize strips separators from raw input.
func Normalize(raw string) string {
	return stripper.Replace(strings.TrimSpace(raw))
}

// ValidAU reports whether raw is a valid Australian mobile or landline
// number after stripping separators.
func ValidAU(raw string) bool {
	return auPattern.MatchString(Normalize(raw))
}

// FormatE164 converts raw to full international form for SMS dispatch.
// A leading national trunk prefix (0) is replaced with the country calling
// code. Only the digit-count bound is enforced here; strict format checks
// happen at intake.
func FormatE164(raw, countryCode string) (string, error) {
	cleaned := Normalize(raw)
	if cleaned == "" {
		return "", ErrInvalidNumber
	}

	if !strings.HasPrefix(cleaned, "+") {
		if strings.HasPrefix(cleaned, "0") {
			cleaned = countryCode + cleaned[1:]
		} else {
			cleaned = "+" + cleaned
		}
	}

	digits := 0
	for _, r := range cleaned[1:] {
		if r < '0' || r > '9' {
			return "", ErrInvalidNumber
		}
		digits++
	}
	if digits < 10 || digits > 15 {
		return "", ErrBadLength
	}

	return cleaned, nil
}
