package district

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// \p{Z} covers the no-break spaces that \s misses in pasted sheet text
var (
	parentheticalPattern = regexp.MustCompile(`[\s\p{Z}]*\([^)]*\)`)
	countySuffixPattern  = regexp.MustCompile(`(?i)[\s\p{Z}]+(Co\.?|County)[\s\p{Z}]*$`)
)

// ParseCounties splits a county cell like "Lake, Porter (part), LaPorte (part)"
// into clean names. Order is preserved and duplicates are kept.
func ParseCounties(cell string) []string {
	counties := []string{}
	if IsBlank(cell) {
		return counties
	}

	s := parentheticalPattern.ReplaceAllString(strings.TrimSpace(cell), "")
	for _, token := range strings.Split(s, ",") {
		name := countySuffixPattern.ReplaceAllString(strings.TrimSpace(token), "")
		name = norm.NFC.String(strings.TrimSpace(name))
		if name != "" {
			counties = append(counties, name)
		}
	}
	return counties
}
