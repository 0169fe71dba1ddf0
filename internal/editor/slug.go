package editor

import "strings"

// Slugify derives a URL slug from a page title: lower-case, non-alphanumeric
// characters stripped, runs of whitespace collapsed to a single hyphen.
func Slugify(title string) string {
	lowered := strings.ToLower(title)

	var cleaned strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			cleaned.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '-':
			cleaned.WriteRune(' ')
		}
	}

	parts := strings.Fields(cleaned.String())
	return strings.Join(parts, "-")
}
