package geomap

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

// Bounds is an inclusive lat/lon window.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// Contains reports whether the coordinate falls inside the window,
// edges included.
func (b Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// Metro windows for the inset views.
var (
	DFWBounds     = Bounds{MinLon: -97.8, MaxLon: -96.3, MinLat: 32.3, MaxLat: 33.4}
	HoustonBounds = Bounds{MinLon: -96.0, MaxLon: -94.8, MinLat: 29.2, MaxLat: 30.2}
)

// stateBounds is the statewide extent used by the full-state figures.
var stateBounds = Bounds{MinLon: -107.0, MaxLon: -93.4, MinLat: 25.7, MaxLat: 36.6}

// Neutral cartography shades.
var (
	baseFill   = hexColor("#f7f7f7")
	baseEdge   = hexColor("#cccccc")
	insetFill  = hexColor("#f5f5f5")
	noDataFill = hexColor("#f0f0f0")
	countyEdge = hexColor("#aaaaaa")
	hollowEdge = hexColor("#999999")
)

// Builder renders the geographic figures into a figures directory.
type Builder struct {
	dir string
	log *zap.Logger
}

// NewBuilder creates a map builder writing into dir.
func NewBuilder(dir string, log *zap.Logger) *Builder {
	return &Builder{dir: dir, log: log}
}

// save writes the figure sized to the window's aspect ratio so
// degrees render square, and emits the one log line.
func (b *Builder) save(p *plot.Plot, bounds Bounds, width vg.Length, name string) error {
	height := vg.Length(float64(width) * (bounds.MaxLat - bounds.MinLat) / (bounds.MaxLon - bounds.MinLon))
	if err := p.Save(width, height, filepath.Join(b.dir, name)); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	b.log.Info("figure saved", zap.String("file", name))
	return nil
}

// newMap returns a titled plot with hidden axes pinned to the window.
func newMap(title string, bounds Bounds) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.Title.Padding = vg.Points(10)
	p.HideAxes()
	p.X.Min, p.X.Max = bounds.MinLon, bounds.MaxLon
	p.Y.Min, p.Y.Max = bounds.MinLat, bounds.MaxLat
	return p
}

// basemap draws every county ring in a light neutral fill beneath the
// point layers.
func basemap(p *plot.Plot, counties *geojson.FeatureCollection, fill, edge color.Color, edgeWidth vg.Length) error {
	for _, f := range counties.Features {
		for _, ring := range Rings(f.Geometry) {
			poly, err := plotter.NewPolygon(ringXYs(ring))
			if err != nil {
				return fmt.Errorf("county ring: %w", err)
			}
			poly.Color = fill
			poly.LineStyle.Color = edge
			poly.LineStyle.Width = edgeWidth
			p.Add(poly)
		}
	}
	return nil
}

// markerRadius compresses a count into a glyph radius. The square
// root keeps large systems from swamping the map.
func markerRadius(count, scale, min float64) vg.Length {
	r := math.Sqrt(count) * scale
	if r < min {
		r = min
	}
	return vg.Points(r)
}

// hollowMarkers draws the zero-quantity group as small hollow rings.
func hollowMarkers(p *plot.Plot, libs []model.GeoLibrary, radius vg.Length) error {
	if len(libs) == 0 {
		return nil
	}
	pts := make(plotter.XYs, len(libs))
	for i, lib := range libs {
		pts[i] = plotter.XY{X: *lib.Lng, Y: *lib.Lat}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("hollow markers: %w", err)
	}
	s.GlyphStyle.Shape = draw.RingGlyph{}
	s.GlyphStyle.Color = hollowEdge
	s.GlyphStyle.Radius = radius
	p.Add(s)
	return nil
}

// filledMarker draws one sized, colored library marker. Filled
// markers are added after the hollow group so they render on top.
func filledMarker(p *plot.Plot, lib model.GeoLibrary, radius vg.Length, c color.Color) error {
	s, err := plotter.NewScatter(plotter.XYs{{X: *lib.Lng, Y: *lib.Lat}})
	if err != nil {
		return fmt.Errorf("marker %s: %w", lib.Name, err)
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = radius
	p.Add(s)
	return nil
}

// pointLabel annotates one library position.
func pointLabel(p *plot.Plot, lib model.GeoLibrary, size vg.Length) {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: *lib.Lng, Y: *lib.Lat}},
		Labels: []string{shortLabel(lib.Name)},
	})
	if err != nil {
		return
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = size
	}
	p.Add(l)
}

// shortLabel strips common organizational suffixes from a label.
func shortLabel(name string) string {
	name = strings.ReplaceAll(name, " Public Library", "")
	name = strings.ReplaceAll(name, " Library System", "")
	return name
}

// hexColor parses a #rrggbb literal, black on a malformed one.
func hexColor(s string) color.RGBA {
	c := color.RGBA{A: 255}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	var v uint32
	for _, r := range s[1:] {
		v <<= 4
		switch {
		case r >= '0' && r <= '9':
			v |= uint32(r - '0')
		case r >= 'a' && r <= 'f':
			v |= uint32(r-'a') + 10
		case r >= 'A' && r <= 'F':
			v |= uint32(r-'A') + 10
		default:
			return color.RGBA{A: 255}
		}
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c
}
