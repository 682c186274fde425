package district

import (
	"fmt"
	"strconv"
)

// Dataset is the lookup document consumed by the static site
type Dataset struct {
	HouseCounties         map[string][]string `json:"hd_to_counties"`
	SenateCounties        map[string][]string `json:"sd_to_counties"`
	CongressionalCounties map[string][]string `json:"cd_to_counties"`
	CountyHouse           map[string][]int    `json:"county_to_hds"`
	CountySenate          map[string][]int    `json:"county_to_sds"`
	CountyCongressional   map[string][]int    `json:"county_to_cds"`
	AllCounties           []string            `json:"all_counties"`
}

// Build finalizes agg, derives the reverse maps and assembles the Dataset.
// It fails only if the derived maps disagree with the forward maps.
func Build(agg *Aggregation) (*Dataset, error) {
	agg.Finalize()

	ds := &Dataset{AllCounties: agg.SortedCounties()}
	for _, c := range Categories() {
		forward := agg.Forward[c]
		reverse := Reverse(forward)
		if err := CheckConsistency(forward, reverse); err != nil {
			return nil, fmt.Errorf("%s maps inconsistent: %w", c, err)
		}

		fwd, rev := ds.maps(c)
		*fwd = make(map[string][]string, len(forward))
		for d, counties := range forward {
			(*fwd)[strconv.Itoa(d)] = counties
		}
		*rev = map[string][]int(reverse)
	}
	return ds, nil
}

// DistrictCount returns how many districts of c the dataset holds
func (ds *Dataset) DistrictCount(c Category) int {
	fwd, _ := ds.maps(c)
	return len(*fwd)
}

// Forward returns the district→counties map of c keyed by district string
func (ds *Dataset) Forward(c Category) map[string][]string {
	fwd, _ := ds.maps(c)
	return *fwd
}

// Reverse returns the county→districts map of c
func (ds *Dataset) Reverse(c Category) map[string][]int {
	_, rev := ds.maps(c)
	return *rev
}

func (ds *Dataset) maps(c Category) (*map[string][]string, *map[string][]int) {
	switch c {
	case House:
		return &ds.HouseCounties, &ds.CountyHouse
	case Senate:
		return &ds.SenateCounties, &ds.CountySenate
	case Congressional:
		return &ds.CongressionalCounties, &ds.CountyCongressional
	}
	panic(fmt.Sprintf("district: unknown category %q", string(c)))
}
