package district

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxRangeSpan bounds how many districts one cell may expand to
const MaxRangeSpan = 10000

var (
	rangePattern  = regexp.MustCompile(`^(\d+)[\s\p{Z}]*[–-][\s\p{Z}]*(\d+)`)
	singlePattern = regexp.MustCompile(`^(\d+)`)
)

// ExpandRange turns a district cell such as "4" or "1–3" into district numbers.
// A reversed range ("5-2"), an oversized span, or non-numeric content yields an
// empty slice.
func ExpandRange(cell string) []int {
	s := strings.TrimSpace(cell)

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo != nil || errHi != nil || hi < lo || hi-lo >= MaxRangeSpan {
			return []int{}
		}
		out := make([]int, 0, hi-lo+1)
		for d := lo; d <= hi; d++ {
			out = append(out, d)
		}
		return out
	}

	if m := singlePattern.FindStringSubmatch(s); m != nil {
		d, err := strconv.Atoi(m[1])
		if err != nil {
			return []int{}
		}
		return []int{d}
	}

	return []int{}
}
