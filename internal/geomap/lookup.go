package geomap

import "github.com/tbbooher/ArgusPanoptes/internal/model"

// RegionTotals is an aggregate quantity keyed by region name as the
// library records declare it (typically "<Name> County").
type RegionTotals map[string]int

// TotalsByRegion sums books held by region across enabled libraries
// with nonzero holdings.
func TotalsByRegion(libs []model.GeoLibrary) RegionTotals {
	totals := RegionTotals{}
	for _, lib := range libs {
		if lib.Enabled && lib.BooksHeld > 0 {
			totals[lib.Region] += lib.BooksHeld
		}
	}
	return totals
}

// Lookup resolves a boundary-file county name against the aggregate.
// The boundary file carries bare names ("Travis") while the library
// records carry suffixed ones ("Travis County"), so the suffixed
// spelling is tried first, then the bare one. Unmatched names
// resolve to zero, which renders as the no-data fill.
func (t RegionTotals) Lookup(county string) int {
	if v := t[county+" County"]; v > 0 {
		return v
	}
	return t[county]
}

// Max returns the largest total, or zero for an empty aggregate.
func (t RegionTotals) Max() int {
	max := 0
	for _, v := range t {
		if v > max {
			max = v
		}
	}
	return max
}
