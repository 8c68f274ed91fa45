package domain

import (
	"strings"
)

// NormalizeEmail trims whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailLocalPart returns the part of the address before '@', or "" when the
// address has no '@' or an empty local part.
func EmailLocalPart(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return ""
	}
	return email[:at]
}

// NormalizeText prepares text for case-insensitive substring matching:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics are preserved.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// ContainsFold reports whether any of fields contains query, ignoring case.
// An empty query matches everything.
func ContainsFold(query string, fields ...string) bool {
	q := NormalizeText(query)
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(NormalizeText(f), q) {
			return true
		}
	}
	return false
}
