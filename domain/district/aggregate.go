package district

import "sort"

// ForwardMap maps a district number to the counties it covers
type ForwardMap map[int][]string

// ReverseMap maps a county name to the districts that include it
type ReverseMap map[string][]int

// Aggregation accumulates forward maps across rows
type Aggregation struct {
	Forward     map[Category]ForwardMap
	AllCounties map[string]struct{}
	finalized   bool
}

// NewAggregation creates an empty aggregation with one forward map per category
func NewAggregation() *Aggregation {
	agg := &Aggregation{
		Forward:     make(map[Category]ForwardMap, len(categorySpecs)),
		AllCounties: make(map[string]struct{}),
	}
	for _, c := range Categories() {
		agg.Forward[c] = make(ForwardMap)
	}
	return agg
}

// AddRow applies every category's column pair of row. A blank or malformed
// district cell contributes nothing for that category.
func (a *Aggregation) AddRow(row Row) {
	for _, c := range Categories() {
		cols := c.Columns()
		districtCell := row.Cell(cols.District)
		if IsBlank(districtCell) {
			continue
		}

		districts := ExpandRange(districtCell)
		if len(districts) == 0 {
			continue
		}

		counties := ParseCounties(row.Cell(cols.Counties))
		forward := a.Forward[c]
		for _, d := range districts {
			if _, ok := forward[d]; !ok {
				forward[d] = []string{}
			}
			forward[d] = append(forward[d], counties...)
		}
		for _, county := range counties {
			a.AllCounties[county] = struct{}{}
		}
	}
}

// Finalize deduplicates every forward map entry. Entries are left sorted.
func (a *Aggregation) Finalize() {
	if a.finalized {
		return
	}
	for _, forward := range a.Forward {
		for d, counties := range forward {
			forward[d] = uniqueSorted(counties)
		}
	}
	a.finalized = true
}

// SortedCounties returns AllCounties in ascending order
func (a *Aggregation) SortedCounties() []string {
	out := make([]string, 0, len(a.AllCounties))
	for county := range a.AllCounties {
		out = append(out, county)
	}
	sort.Strings(out)
	return out
}

// Aggregate builds finalized forward maps from rows
func Aggregate(rows []Row) *Aggregation {
	agg := NewAggregation()
	for _, row := range rows {
		agg.AddRow(row)
	}
	agg.Finalize()
	return agg
}

func uniqueSorted(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
