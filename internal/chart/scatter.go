package chart

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

// scatterLabelCount caps annotated points to avoid overplotting.
const scatterLabelCount = 5

// CopiesScatter renders books held against total copies per system.
// Only the top systems by total copies are annotated; total copies is
// the secondary ranking key, not the x axis.
func (b *Builder) CopiesScatter(systems []model.SystemRank) error {
	pts := make(plotter.XYs, len(systems))
	for i, s := range systems {
		pts[i] = plotter.XY{X: float64(s.BooksHeld), Y: float64(s.TotalCopies)}
	}

	p := newPlot("Books Held vs. Total Copies per System",
		"Unique books held", "Total copies")

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("copies scatter: %w", err)
	}
	scatter.GlyphStyle.Color = b.palette.Primary
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	byCopies := make([]model.SystemRank, len(systems))
	copy(byCopies, systems)
	sort.SliceStable(byCopies, func(i, j int) bool {
		return byCopies[i].TotalCopies > byCopies[j].TotalCopies
	})
	if len(byCopies) > scatterLabelCount {
		byCopies = byCopies[:scatterLabelCount]
	}

	for _, s := range byCopies {
		label := clip(shortLabel(s.SystemName), labelBudget)
		annotate(p,
			plotter.XYs{{X: float64(s.BooksHeld), Y: float64(s.TotalCopies)}},
			[]string{label}, vg.Points(6))
	}

	return b.save(p, 7*vg.Inch, 6*vg.Inch, "copies_scatter.pdf")
}
