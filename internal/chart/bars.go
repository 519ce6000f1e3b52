package chart

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

// TopSystemsBar renders the horizontal bar chart of the top systems
// by books held.
func (b *Builder) TopSystemsBar(systems []model.SystemRank) error {
	top := headSystems(systems, b.topN)

	// Reverse so the highest-ranked system lands at the top edge.
	names := make([]string, len(top))
	values := make(plotter.Values, len(top))
	for i, s := range top {
		j := len(top) - 1 - i
		names[j] = truncate(s.SystemName, nameBudget)
		values[j] = float64(s.BooksHeld)
	}

	p := newPlot(fmt.Sprintf("Top %d Library Systems by Books Held", b.topN), "Books held", "")
	if err := addHBars(p, values, names, b.palette.Primary); err != nil {
		return fmt.Errorf("top systems bars: %w", err)
	}
	annotate(p, offsetXYs(values, 0.5), countLabels(values), vg.Points(7))

	return b.save(p, 8*vg.Inch, 8*vg.Inch, "top_systems_bar.pdf")
}

// TopBooksBar renders the horizontal bar chart of the most widely
// held books.
func (b *Builder) TopBooksBar(books []model.Book) error {
	top := books
	if len(top) > b.topN {
		top = top[:b.topN]
	}

	titles := make([]string, len(top))
	values := make(plotter.Values, len(top))
	for i, bk := range top {
		j := len(top) - 1 - i
		titles[j] = truncate(bk.Title, titleBudget)
		values[j] = float64(bk.SystemCount)
	}

	p := newPlot(fmt.Sprintf("Top %d Most Widely Held Books", b.topN), "Number of library systems", "")
	if err := addHBars(p, values, titles, b.palette.Secondary); err != nil {
		return fmt.Errorf("top books bars: %w", err)
	}
	annotate(p, offsetXYs(values, 0.3), countLabels(values), vg.Points(7))

	return b.save(p, 8*vg.Inch, 8*vg.Inch, "top_books_bar.pdf")
}

// AvailabilityBar renders availability rates for the top systems,
// bars colored by rate. Systems reporting zero copies are excluded
// entirely rather than shown at rate zero.
func (b *Builder) AvailabilityBar(systems []model.SystemRank) error {
	var withCopies []model.SystemRank
	for _, s := range systems {
		if _, ok := s.AvailabilityRate(); ok {
			withCopies = append(withCopies, s)
		}
	}

	// Same membership as the books-held chart, ordered by rate.
	top := headSystems(withCopies, b.topN)
	sort.SliceStable(top, func(i, j int) bool {
		ri, _ := top[i].AvailabilityRate()
		rj, _ := top[j].AvailabilityRate()
		return ri < rj
	})

	names := make([]string, len(top))
	rates := make(plotter.Values, len(top))
	for i, s := range top {
		names[i] = clip(s.SystemName, nameBudget)
		rates[i], _ = s.AvailabilityRate()
	}

	p := newPlot(fmt.Sprintf("Book Availability Rate - Top %d Systems", b.topN), "Availability rate", "")
	ramp := AvailabilityRamp()
	for i, r := range rates {
		bar, err := plotter.NewBarChart(plotter.Values{r}, vg.Points(8))
		if err != nil {
			return fmt.Errorf("availability bars: %w", err)
		}
		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.Color = ramp.At(r)
		bar.LineStyle.Width = 0
		p.Add(bar)
	}
	p.NominalY(names...)
	p.Y.Tick.Label.Font.Size = vg.Points(8)
	p.X.Min = 0
	p.X.Max = 1.05

	labels := make([]string, len(rates))
	for i, r := range rates {
		labels[i] = fmt.Sprintf("%.0f%%", r*100)
	}
	annotate(p, offsetXYs(rates, 0.01), labels, vg.Points(7))

	return b.save(p, 8*vg.Inch, 8*vg.Inch, "availability_bar.pdf")
}

// headSystems returns the first n systems by descending books held,
// leaving the input untouched.
func headSystems(systems []model.SystemRank, n int) []model.SystemRank {
	sorted := make([]model.SystemRank, len(systems))
	copy(sorted, systems)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BooksHeld > sorted[j].BooksHeld
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// addHBars adds a single-color horizontal bar series with nominal
// category labels.
func addHBars(p *plot.Plot, values plotter.Values, names []string, c color.Color) error {
	bars, err := plotter.NewBarChart(values, vg.Points(8))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = c
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(names...)
	p.Y.Tick.Label.Font.Size = vg.Points(8)
	return nil
}

// offsetXYs places annotation anchors just past each bar end.
func offsetXYs(values plotter.Values, pad float64) plotter.XYs {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: v + pad, Y: float64(i)}
	}
	return xys
}

// countLabels formats raw values as integer annotations.
func countLabels(values plotter.Values) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = fmt.Sprintf("%.0f", v)
	}
	return labels
}
