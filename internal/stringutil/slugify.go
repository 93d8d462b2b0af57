package stringutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a route name to a file-name friendly slug.
// Accents are stripped ("Église" becomes "eglise"), every other run of
// non-alphanumeric characters becomes a single hyphen.
func Slugify(name string) string {
	s := strings.ToLower(stripMarks(name))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FileName returns "<slug>-<suffix>.<ext>", or "<suffix>.<ext>" when the
// name has no usable characters.
func FileName(name, suffix, ext string) string {
	slug := Slugify(name)
	if slug == "" {
		return suffix + "." + ext
	}
	return slug + "-" + suffix + "." + ext
}

func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
