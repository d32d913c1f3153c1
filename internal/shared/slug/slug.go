package slug

import (
	"regexp"
	"strings"
)

const maxLen = 80

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// FromName derives a URL-safe slug from a display name.
func FromName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = strings.Trim(s[:maxLen], "-")
	}
	if s == "" {
		return "item"
	}
	return s
}
