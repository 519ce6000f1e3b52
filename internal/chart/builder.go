package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Label character budgets before the ellipsis is appended.
const (
	nameBudget  = 40
	titleBudget = 45
	labelBudget = 25
)

// Builder renders the report charts into a figures directory.
type Builder struct {
	dir     string
	palette Palette
	topN    int
	log     *zap.Logger
}

// NewBuilder creates a chart builder writing into dir.
func NewBuilder(dir string, pal Palette, topN int, log *zap.Logger) *Builder {
	return &Builder{dir: dir, palette: pal, topN: topN, log: log}
}

// newPlot returns a plot with the shared report typography.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Size = vg.Points(10)
	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(10)
	return p
}

// save writes the figure and emits its one log line.
func (b *Builder) save(p *plot.Plot, w, h vg.Length, name string) error {
	if err := p.Save(w, h, filepath.Join(b.dir, name)); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	b.log.Info("figure saved", zap.String("file", name))
	return nil
}

// truncate shortens s to at most n characters, appending an ellipsis
// when anything was cut. Character means rune, so a cut never splits
// a multibyte title.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// clip hard-cuts s to at most n characters with no ellipsis.
func clip(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

// shortLabel strips common organizational suffixes for compact
// annotations.
func shortLabel(name string) string {
	name = strings.ReplaceAll(name, " Public Library", "")
	name = strings.ReplaceAll(name, " Library System", "")
	return name
}

// annotate places one text label per value next to horizontal bars.
func annotate(p *plot.Plot, xys plotter.XYs, labels []string, size vg.Length) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = size
		l.TextStyle[i].Color = hex("#333333")
	}
	p.Add(l)
}
