package app

import (
	"fmt"
	"io"

	"districtmap/domain/district"

	"github.com/montanaflynn/stats"
)

// CategorySummary describes the districts of one category
type CategorySummary struct {
	Category       district.Category
	Districts      int
	MeanCounties   float64
	MedianCounties float64
	MaxCounties    float64
}

// Summary is reported after a successful conversion
type Summary struct {
	OutputPath    string
	Categories    []CategorySummary
	TotalCounties int
}

// Summarize computes district counts and counties-per-district statistics
func Summarize(ds *district.Dataset, outputPath string) *Summary {
	summary := &Summary{OutputPath: outputPath, TotalCounties: len(ds.AllCounties)}

	for _, c := range district.Categories() {
		cs := CategorySummary{Category: c, Districts: ds.DistrictCount(c)}

		sizes := make(stats.Float64Data, 0, cs.Districts)
		for _, counties := range ds.Forward(c) {
			sizes = append(sizes, float64(len(counties)))
		}
		// Empty categories keep zero statistics
		if len(sizes) > 0 {
			cs.MeanCounties, _ = sizes.Mean()
			cs.MedianCounties, _ = sizes.Median()
			cs.MaxCounties, _ = sizes.Max()
		}

		summary.Categories = append(summary.Categories, cs)
	}
	return summary
}

// Print writes the summary lines shown after a conversion
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\n✓ Converted successfully!\n")
	for _, cs := range s.Categories {
		fmt.Fprintf(w, "  %s: %d\n", cs.Category.Label(), cs.Districts)
	}
	fmt.Fprintf(w, "  Total Counties: %d\n", s.TotalCounties)
	for _, cs := range s.Categories {
		if cs.Districts == 0 {
			continue
		}
		fmt.Fprintf(w, "  Counties per %s district: mean %.2f, median %.1f, max %.0f\n",
			cs.Category, cs.MeanCounties, cs.MedianCounties, cs.MaxCounties)
	}
	fmt.Fprintf(w, "\nJSON file saved as: %s\n", s.OutputPath)
}
