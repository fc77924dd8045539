// Package normalize holds input normalization helpers shared by forms
// and stores. Normalization happens before validation so the stored
// values are canonical.
package normalize

import "strings"

// Name collapses internal whitespace runs and trims the result.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Role lowercases and trims a role value.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Phone normalizes a phone number to digit groups joined by hyphens.
// Korean mobile numbers (010-XXXX-XXXX) and Seoul landlines
// (02-XXX(X)-XXXX) get the conventional grouping; anything else keeps
// its digits (and a leading +) unhyphenated rather than guessing.
func Phone(s string) string {
	s = strings.TrimSpace(s)
	plus := strings.HasPrefix(s, "+")

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if d == "" {
		return ""
	}
	if plus {
		return "+" + d
	}

	switch {
	case len(d) == 11 && strings.HasPrefix(d, "01"):
		// 010-1234-5678
		return d[:3] + "-" + d[3:7] + "-" + d[7:]
	case len(d) == 10 && strings.HasPrefix(d, "01"):
		// older 011/016/... numbers: 011-123-4567
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	case len(d) == 10 && strings.HasPrefix(d, "02"):
		// 02-1234-5678
		return d[:2] + "-" + d[2:6] + "-" + d[6:]
	case len(d) == 9 && strings.HasPrefix(d, "02"):
		// 02-123-4567
		return d[:2] + "-" + d[2:5] + "-" + d[5:]
	default:
		return d
	}
}

// GraduationYear trims a graduation year; it is stored as free text so
// ranges like "2019-2020" survive.
func GraduationYear(s string) string {
	return strings.TrimSpace(s)
}
