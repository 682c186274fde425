package app

import (
	"fmt"
	"strconv"
	"strings"

	"districtmap/domain/district"
	"districtmap/internal/errors"

	"github.com/tidwall/gjson"
)

// CountyDistricts lists the districts of every category that include a county
type CountyDistricts struct {
	County    string                       `json:"county"`
	Districts map[district.Category][]int `json:"districts"`
}

// Lookup answers queries against a written lookup document
type Lookup struct {
	doc []byte
}

// NewLookup wraps a lookup document, as produced by the converter
func NewLookup(doc []byte) *Lookup {
	return &Lookup{doc: doc}
}

// Document returns the raw document
func (l *Lookup) Document() []byte {
	return l.doc
}

// Counties returns all_counties in document order
func (l *Lookup) Counties() []string {
	result := gjson.GetBytes(l.doc, "all_counties")
	counties := make([]string, 0, len(result.Array()))
	for _, v := range result.Array() {
		counties = append(counties, v.String())
	}
	return counties
}

// County resolves name case-insensitively and returns its districts
func (l *Lookup) County(name string) (*CountyDistricts, error) {
	canonical := ""
	for _, county := range l.Counties() {
		if strings.EqualFold(county, strings.TrimSpace(name)) {
			canonical = county
			break
		}
	}
	if canonical == "" {
		return nil, errors.NotFound(fmt.Sprintf("county %q", name))
	}

	out := &CountyDistricts{County: canonical, Districts: make(map[district.Category][]int)}
	for _, c := range district.Categories() {
		districts := []int{}
		// Keys are iterated rather than addressed by path: county names may contain '.'
		gjson.GetBytes(l.doc, c.ReverseKey()).ForEach(func(key, value gjson.Result) bool {
			if key.String() != canonical {
				return true
			}
			for _, d := range value.Array() {
				districts = append(districts, int(d.Int()))
			}
			return false
		})
		out.Districts[c] = districts
	}
	return out, nil
}

// District returns the counties of district number in category c
func (l *Lookup) District(c district.Category, number int) ([]string, error) {
	result := gjson.GetBytes(l.doc, c.ForwardKey()+"."+strconv.Itoa(number))
	if !result.Exists() {
		return nil, errors.NotFound(fmt.Sprintf("%s district %d", c, number))
	}
	counties := make([]string, 0, len(result.Array()))
	for _, v := range result.Array() {
		counties = append(counties, v.String())
	}
	return counties, nil
}

// ParseDistrictRef parses "house:12" style references
func ParseDistrictRef(ref string) (district.Category, int, error) {
	cat, num, ok := strings.Cut(ref, ":")
	if !ok {
		return "", 0, errors.InvalidInput(fmt.Sprintf("district reference %q must look like house:12", ref))
	}
	c, ok := district.ParseCategory(cat)
	if !ok {
		return "", 0, errors.InvalidInput(fmt.Sprintf("unknown district category %q", cat))
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return "", 0, errors.InvalidInput(fmt.Sprintf("invalid district number %q", num))
	}
	return c, n, nil
}
