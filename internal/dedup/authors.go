// Package dedup collapses duplicate bibliographic records returned by
// independent academic search sources into a single canonical record per
// publication. It combines DOI matching, fuzzy title comparison, and
// abstract/author corroboration to form duplicate groups, then selects the
// most complete record of each group.
package dedup

import (
	"strings"
	"unicode"
)

// NormalizeName normalizes an author name for comparison:
//   - Converts to lowercase
//   - Detects and reorders "Last, First" format to "First Last"
//   - Removes all non-letter, non-space characters (apostrophes, periods, hyphens, etc.)
//   - Collapses multiple spaces to a single space
//   - Trims leading and trailing whitespace
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	name = strings.ToLower(name)

	// Handle "Last, First" format: split on comma, swap parts.
	if idx := strings.Index(name, ","); idx >= 0 {
		last := strings.TrimSpace(name[:idx])
		first := strings.TrimSpace(name[idx+1:])
		if first != "" {
			name = first + " " + last
		} else {
			name = last
		}
	}

	// Remove non-letter, non-space characters.
	var sb strings.Builder
	sb.Grow(len(name))
	prevSpace := false

	for _, r := range name {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
			prevSpace = false
		} else if unicode.IsSpace(r) {
			if !prevSpace && sb.Len() > 0 {
				sb.WriteRune(' ')
				prevSpace = true
			}
		}
		// All other characters (apostrophes, periods, hyphens) are dropped.
	}

	return strings.TrimRight(sb.String(), " ")
}

// joinAuthors normalizes each author name and joins the list with "; " for
// fuzzy comparison. Empty names are dropped.
func joinAuthors(authors []string) string {
	parts := make([]string, 0, len(authors))
	for _, a := range authors {
		if n := NormalizeName(a); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, "; ")
}
