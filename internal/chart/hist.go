package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
)

// Fixed bin widths per distribution. Binning is not adaptive.
const (
	booksPerSystemBinWidth = 10
	systemsPerBookBinWidth = 5
)

// BooksPerSystemHist renders the distribution of books held per
// system.
func (b *Builder) BooksPerSystemHist(systems []model.SystemRank) error {
	values := make([]float64, len(systems))
	for i, s := range systems {
		values[i] = float64(s.BooksHeld)
	}
	return b.histogram(values, booksPerSystemBinWidth, b.palette.Primary,
		"Distribution of Books Held per System",
		"Books held", "Number of systems",
		"books_per_system_hist.pdf")
}

// SystemsPerBookHist renders the distribution of holding systems per
// book.
func (b *Builder) SystemsPerBookHist(books []model.Book) error {
	values := make([]float64, len(books))
	for i, bk := range books {
		values[i] = float64(bk.SystemCount)
	}
	return b.histogram(values, systemsPerBookBinWidth, b.palette.Secondary,
		"Distribution of Systems per Book",
		"Number of systems holding the book", "Number of books",
		"systems_per_book_hist.pdf")
}

func (b *Builder) histogram(values []float64, width int, c color.Color, title, xlabel, ylabel, filename string) error {
	counts, labels := binCounts(values, width)

	p := newPlot(title, xlabel, ylabel)
	bars, err := plotter.NewBarChart(counts, vg.Points(14))
	if err != nil {
		return fmt.Errorf("histogram %s: %w", filename, err)
	}
	bars.Color = c
	bars.LineStyle.Width = 0
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.Font.Size = vg.Points(8)

	return b.save(p, 7*vg.Inch, 5*vg.Inch, filename)
}

// binCounts buckets values into fixed-width bins starting at zero.
// The bin range always extends at least one bin past the observed
// maximum, so the rightmost bar never sits on the chart edge.
func binCounts(values []float64, width int) (plotter.Values, []string) {
	maxV := 0.0
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}

	n := int(maxV)/width + 1
	counts := make(plotter.Values, n)
	for _, v := range values {
		i := int(v) / width
		if i >= n {
			i = n - 1
		}
		counts[i]++
	}

	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d-%d", i*width, (i+1)*width)
	}
	return counts, labels
}
