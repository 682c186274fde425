package district

import (
	"fmt"
	"slices"
	"sort"
)

// Reverse derives county→districts from a deduplicated forward map.
// Districts are visited in ascending order so each list comes out sorted.
func Reverse(forward ForwardMap) ReverseMap {
	districts := make([]int, 0, len(forward))
	for d := range forward {
		districts = append(districts, d)
	}
	sort.Ints(districts)

	reverse := make(ReverseMap)
	for _, d := range districts {
		for _, county := range forward[d] {
			reverse[county] = append(reverse[county], d)
		}
	}
	return reverse
}

// CheckConsistency verifies that forward and reverse describe the same
// (district, county) pairs.
func CheckConsistency(forward ForwardMap, reverse ReverseMap) error {
	pairs := 0
	for d, counties := range forward {
		for _, county := range counties {
			if !slices.Contains(reverse[county], d) {
				return fmt.Errorf("county %q lists no district %d", county, d)
			}
			pairs++
		}
	}

	reversePairs := 0
	for county, districts := range reverse {
		for _, d := range districts {
			if !slices.Contains(forward[d], county) {
				return fmt.Errorf("district %d lists no county %q", d, county)
			}
			reversePairs++
		}
	}

	if pairs != reversePairs {
		return fmt.Errorf("forward has %d pairs, reverse has %d", pairs, reversePairs)
	}
	return nil
}
