// Package address renders placemark addresses for display.
package address

import (
	"strings"

	"servicemap/internal/domain/entity"
)

// Format renders a postal address as a single line, e.g. "4 Melrose Place, Austin TX".
// Separators are only inserted between components that are present; absent
// components contribute nothing.
func Format(addr entity.PostalAddress) string {
	firstSeparator := ""
	if addr.HouseNumber != nil && addr.Street != nil {
		firstSeparator = " "
	}

	comma := ""
	if (addr.HouseNumber != nil || addr.Street != nil) && (addr.City != nil || addr.Region != nil) {
		comma = ", "
	}

	secondSeparator := ""
	if addr.City != nil && addr.Region != nil {
		secondSeparator = " "
	}

	var b strings.Builder
	b.WriteString(valueOf(addr.HouseNumber))
	b.WriteString(firstSeparator)
	b.WriteString(valueOf(addr.Street))
	b.WriteString(comma)
	b.WriteString(valueOf(addr.City))
	b.WriteString(secondSeparator)
	b.WriteString(valueOf(addr.Region))

	return b.String()
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
