package district

import "strings"

// Row is one spreadsheet row addressed by column position
type Row []string

// Cell returns the cell at col, or "" when the row is shorter
func (r Row) Cell(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// nullMarkers are cell texts treated as missing values, matching the
// default NA tokens of common spreadsheet readers.
var nullMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// IsBlank reports whether a cell holds no value: empty, whitespace only, or a null marker
func IsBlank(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" {
		return true
	}
	_, ok := nullMarkers[s]
	return ok
}
