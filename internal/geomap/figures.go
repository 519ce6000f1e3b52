package geomap

import (
	"fmt"
	"image/color"

	"github.com/paulmach/orb/geojson"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tbbooher/ArgusPanoptes/internal/chart"
	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

// Overview renders the statewide map of all enabled libraries. Marker
// size follows the square root of books held; color follows the
// holdings ramp over the observed range. Libraries without holdings
// render as small hollow rings underneath.
func (b *Builder) Overview(libs []model.GeoLibrary, counties *geojson.FeatureCollection) error {
	p := newMap("Texas Library Systems - Book Holdings", stateBounds)
	if err := basemap(p, counties, baseFill, baseEdge, vg.Points(0.3)); err != nil {
		return err
	}

	var withHoldings, noHoldings []model.GeoLibrary
	maxBooks := 0
	for _, lib := range libs {
		if !lib.Enabled || !lib.HasCoordinates() {
			continue
		}
		if lib.BooksHeld > 0 {
			withHoldings = append(withHoldings, lib)
			if lib.BooksHeld > maxBooks {
				maxBooks = lib.BooksHeld
			}
		} else {
			noHoldings = append(noHoldings, lib)
		}
	}

	if err := hollowMarkers(p, noHoldings, vg.Points(1.5)); err != nil {
		return err
	}

	ramp := chart.HoldingsRamp(1, float64(maxBooks))
	for _, lib := range withHoldings {
		r := markerRadius(float64(lib.BooksHeld), 1.1, 1.5)
		if err := filledMarker(p, lib, r, ramp.At(float64(lib.BooksHeld))); err != nil {
			return err
		}
	}

	return b.save(p, stateBounds, 8*vg.Inch, "texas_overview_map.pdf")
}

// Choropleth renders counties shaded by total books held across the
// systems declaring that county as their region. Counties with no
// matching aggregate keep the no-data fill; an all-empty aggregate
// still renders every county.
func (b *Builder) Choropleth(libs []model.GeoLibrary, counties *geojson.FeatureCollection) error {
	totals := TotalsByRegion(libs)

	max := totals.Max()
	if max == 0 {
		max = 1
	}
	ramp := chart.CoverageRamp(float64(max))

	p := newMap("County-Level Coverage", stateBounds)
	for _, f := range counties.Features {
		var fill color.Color = noDataFill
		if name, ok := CountyName(f); ok {
			if v := totals.Lookup(name); v > 0 {
				fill = ramp.At(float64(v))
			}
		}
		for _, ring := range Rings(f.Geometry) {
			poly, err := plotter.NewPolygon(ringXYs(ring))
			if err != nil {
				return fmt.Errorf("county ring: %w", err)
			}
			poly.Color = fill
			poly.LineStyle.Color = countyEdge
			poly.LineStyle.Width = vg.Points(0.3)
			p.Add(poly)
		}
	}

	return b.save(p, stateBounds, 8*vg.Inch, "texas_coverage_choropleth.pdf")
}

// Inset renders a zoomed metro view: the same marker logic as the
// overview restricted to a bounding window, with text labels for
// systems whose holdings meet the threshold.
func (b *Builder) Inset(libs []model.GeoLibrary, counties *geojson.FeatureCollection, bounds Bounds, title, filename string, labelThreshold int) error {
	p := newMap(title, bounds)
	if err := basemap(p, counties, insetFill, baseEdge, vg.Points(0.4)); err != nil {
		return err
	}

	var withHoldings, noHoldings []model.GeoLibrary
	maxBooks := 1
	for _, lib := range libs {
		if !lib.Enabled || !lib.HasCoordinates() || !bounds.Contains(*lib.Lat, *lib.Lng) {
			continue
		}
		if lib.BooksHeld > 0 {
			withHoldings = append(withHoldings, lib)
			if lib.BooksHeld > maxBooks {
				maxBooks = lib.BooksHeld
			}
		} else {
			noHoldings = append(noHoldings, lib)
		}
	}

	if err := hollowMarkers(p, noHoldings, vg.Points(2.2)); err != nil {
		return err
	}

	ramp := chart.HoldingsRamp(1, float64(maxBooks))
	for _, lib := range withHoldings {
		r := markerRadius(float64(lib.BooksHeld), 1.4, 2.2)
		if err := filledMarker(p, lib, r, ramp.At(float64(lib.BooksHeld))); err != nil {
			return err
		}
		if lib.BooksHeld >= labelThreshold {
			pointLabel(p, lib, vg.Points(6))
		}
	}

	return b.save(p, bounds, 8*vg.Inch, filename)
}

// Availability renders the statewide map with markers colored by
// availability rate on the fixed [0, 1] ramp and sized by holdings.
// Systems reporting zero copies are excluded, not shown at rate zero.
func (b *Builder) Availability(libs []model.GeoLibrary, counties *geojson.FeatureCollection) error {
	p := newMap("Book Availability by System", stateBounds)
	if err := basemap(p, counties, baseFill, baseEdge, vg.Points(0.3)); err != nil {
		return err
	}

	ramp := chart.AvailabilityRamp()
	for _, lib := range libs {
		if !lib.Enabled || !lib.HasCoordinates() {
			continue
		}
		rate, ok := lib.AvailabilityRate()
		if !ok {
			continue
		}
		r := markerRadius(float64(lib.BooksHeld), 1.1, 1.7)
		if err := filledMarker(p, lib, r, ramp.At(rate)); err != nil {
			return err
		}
	}

	return b.save(p, stateBounds, 8*vg.Inch, "texas_availability_map.pdf")
}
