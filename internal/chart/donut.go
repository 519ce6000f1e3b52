package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

// wedgeStep is the arc resolution of the polygon approximation.
const wedgeStep = math.Pi / 90

// donutSlice is one wedge of a donut chart.
type donutSlice struct {
	Label string
	Value float64
	Color color.Color
}

var titleCaser = cases.Title(language.English)

// VendorDonut renders the donut of enabled systems by ILS vendor.
// Slices are ordered by descending count with fixed vendor colors;
// unrecognized vendors get the neutral shade.
func (b *Builder) VendorDonut(metas []model.SystemMeta) error {
	counts := map[string]int{}
	for _, m := range metas {
		if m.Enabled {
			counts[m.Vendor]++
		}
	}

	vendors := make([]string, 0, len(counts))
	for v := range counts {
		vendors = append(vendors, v)
	}
	sort.Slice(vendors, func(i, j int) bool {
		if counts[vendors[i]] != counts[vendors[j]] {
			return counts[vendors[i]] > counts[vendors[j]]
		}
		return vendors[i] < vendors[j]
	})

	slices := make([]donutSlice, len(vendors))
	for i, v := range vendors {
		pretty := titleCaser.String(strings.ReplaceAll(v, "_", " "))
		slices[i] = donutSlice{
			Label: fmt.Sprintf("%s (%d)", pretty, counts[v]),
			Value: float64(counts[v]),
			Color: b.palette.VendorColor(v),
		}
	}

	return b.donut("Library Systems by ILS Vendor", "vendor_breakdown.pdf",
		slices, 0, 0.6, 7*vg.Inch)
}

// FoundDonut renders the found versus not-found donut.
func (b *Builder) FoundDonut(stats model.SummaryStats) error {
	slices := []donutSlice{
		{
			Label: fmt.Sprintf("Found (%d)", stats.BooksFound),
			Value: float64(stats.BooksFound),
			Color: b.palette.Found,
		},
		{
			Label: fmt.Sprintf("Not found (%d)", stats.BooksNotFound),
			Value: float64(stats.BooksNotFound),
			Color: b.palette.NotFound,
		},
	}
	return b.donut("Books Found in Texas Libraries", "found_vs_notfound.pdf",
		slices, 1, 0.65, 5*vg.Inch)
}

// donut renders wedges as closed polygon arc fans. pctDecimals
// controls the percent annotation precision; innerFrac is the hole
// radius relative to the outer radius.
func (b *Builder) donut(title, filename string, slices []donutSlice, pctDecimals int, innerFrac float64, size vg.Length) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Title.Padding = vg.Points(15)
	p.HideAxes()
	p.X.Min, p.X.Max = -1.6, 1.6
	p.Y.Min, p.Y.Max = -1.6, 1.6

	total := 0.0
	for _, s := range slices {
		total += s.Value
	}
	if total == 0 {
		return b.save(p, size, size, filename)
	}

	pctFormat := fmt.Sprintf("%%.%df%%%%", pctDecimals)
	angle := math.Pi / 2 // first wedge starts at twelve o'clock
	for _, s := range slices {
		if s.Value == 0 {
			continue
		}
		span := s.Value / total * 2 * math.Pi

		poly, err := plotter.NewPolygon(wedgeXYs(angle, angle+span, innerFrac, 1))
		if err != nil {
			return fmt.Errorf("donut %s: %w", filename, err)
		}
		poly.Color = s.Color
		poly.LineStyle.Color = color.White
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)

		mid := angle + span/2
		pctR := (1 + innerFrac) / 2 * 1.05
		annotate(p,
			plotter.XYs{{X: pctR * math.Cos(mid), Y: pctR * math.Sin(mid)}},
			[]string{fmt.Sprintf(pctFormat, s.Value/total*100)},
			vg.Points(8))
		annotate(p,
			plotter.XYs{{X: 1.15 * math.Cos(mid), Y: 1.15 * math.Sin(mid)}},
			[]string{s.Label},
			vg.Points(8))

		angle += span
	}

	return b.save(p, size, size, filename)
}

// wedgeXYs traces one wedge: along the outer arc from a0 to a1, then
// back along the inner arc.
func wedgeXYs(a0, a1, rInner, rOuter float64) plotter.XYs {
	var pts plotter.XYs
	for a := a0; a < a1; a += wedgeStep {
		pts = append(pts, plotter.XY{X: rOuter * math.Cos(a), Y: rOuter * math.Sin(a)})
	}
	pts = append(pts, plotter.XY{X: rOuter * math.Cos(a1), Y: rOuter * math.Sin(a1)})
	for a := a1; a > a0; a -= wedgeStep {
		pts = append(pts, plotter.XY{X: rInner * math.Cos(a), Y: rInner * math.Sin(a)})
	}
	pts = append(pts, plotter.XY{X: rInner * math.Cos(a0), Y: rInner * math.Sin(a0)})
	return pts
}
