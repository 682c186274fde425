package district

import "strings"

// Category is one of the independently numbered district kinds
type Category string

const (
	House         Category = "house"
	Senate        Category = "senate"
	Congressional Category = "congressional"
)

// Columns locates a category's cells within a row
type Columns struct {
	District int
	Counties int
}

// categorySpec binds a category to its sheet columns and output keys.
// Columns 2 and 5 are spacers in the source workbook.
type categorySpec struct {
	columns    Columns
	forwardKey string
	reverseKey string
	label      string
}

var categorySpecs = map[Category]categorySpec{
	House:         {Columns{0, 1}, "hd_to_counties", "county_to_hds", "House Districts"},
	Senate:        {Columns{3, 4}, "sd_to_counties", "county_to_sds", "Senate Districts"},
	Congressional: {Columns{6, 7}, "cd_to_counties", "county_to_cds", "Congressional Districts"},
}

// Categories returns every category in sheet order
func Categories() []Category {
	return []Category{House, Senate, Congressional}
}

// Columns returns the (district, counties) column pair for c
func (c Category) Columns() Columns { return categorySpecs[c].columns }

// ForwardKey is the JSON key of the district→counties map
func (c Category) ForwardKey() string { return categorySpecs[c].forwardKey }

// ReverseKey is the JSON key of the county→districts map
func (c Category) ReverseKey() string { return categorySpecs[c].reverseKey }

// Label is the human readable plural name used in summaries
func (c Category) Label() string { return categorySpecs[c].label }

// ParseCategory accepts full names and the hd/sd/cd abbreviations
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "house", "hd":
		return House, true
	case "senate", "sd":
		return Senate, true
	case "congressional", "congress", "cd":
		return Congressional, true
	}
	return "", false
}
