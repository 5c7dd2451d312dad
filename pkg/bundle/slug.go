package bundle

import (
	"regexp"
	"strings"
)

// DefaultName is used when a problem statement yields no usable characters.
const DefaultName = "vibe-coded-build"

const maxSlugLen = 48

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a repository name from a problem statement: lowercase,
// runs of anything outside [a-z0-9] collapsed to "-", leading and trailing
// dashes removed, then cut to 48 characters. The cut happens after the
// trim, so a long name may end in a dash.
func Slug(problem string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(problem), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	if s == "" {
		return DefaultName
	}
	return s
}
