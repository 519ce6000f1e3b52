// Package geomap renders the geographic figures: statewide point
// maps, the county choropleth, and the metro inset views.
package geomap

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gonum.org/v1/plot/plotter"
)

// nameKeys lists the property spellings that may carry the county
// name, in lookup order. The first present key wins.
var nameKeys = []string{"NAME", "NAMELSAD", "name"}

// CountyName extracts the county name from a boundary feature's
// properties.
func CountyName(f *geojson.Feature) (string, bool) {
	for _, k := range nameKeys {
		if v, ok := f.Properties[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// Rings flattens a boundary geometry into simple exterior rings.
// Every part of a multi-polygon comes out as an independent ring so
// all parts draw with identical styling.
func Rings(g orb.Geometry) []orb.Ring {
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) > 0 {
			return []orb.Ring{geom[0]}
		}
	case orb.MultiPolygon:
		var rings []orb.Ring
		for _, poly := range geom {
			if len(poly) > 0 {
				rings = append(rings, poly[0])
			}
		}
		return rings
	}
	return nil
}

// ringXYs converts a ring to plot coordinates (lon as x, lat as y).
func ringXYs(r orb.Ring) plotter.XYs {
	xys := make(plotter.XYs, len(r))
	for i, pt := range r {
		xys[i] = plotter.XY{X: pt.Lon(), Y: pt.Lat()}
	}
	return xys
}
