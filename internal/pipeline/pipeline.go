// Package pipeline orchestrates the full report batch: load the
// extracted documents, render the analytics charts, render the maps,
// then render the narrative templates. Stages run sequentially and
// fail fast; repeated runs overwrite the same fixed artifact names.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/tbbooher/ArgusPanoptes/internal/chart"
	"github.com/tbbooher/ArgusPanoptes/internal/geomap"
	"github.com/tbbooher/ArgusPanoptes/internal/loader"
	"github.com/tbbooher/ArgusPanoptes/internal/model"
	"github.com/tbbooher/ArgusPanoptes/internal/report"
	"github.com/tbbooher/ArgusPanoptes/internal/themes"
	"github.com/tbbooher/ArgusPanoptes/internal/worker"
)

// Metro inset views label systems holding at least this many books.
const insetLabelThreshold = 15

// Pipeline wires the loader and builders for one run.
type Pipeline struct {
	cfg         *model.Config
	loader      *loader.Loader
	categorizer *themes.Categorizer
	charts      *chart.Builder
	maps        *geomap.Builder
	renderer    *report.Renderer
	pool        *worker.Pool
	log         *zap.Logger
}

// New creates a pipeline from the run configuration.
func New(cfg *model.Config, log *zap.Logger) (*Pipeline, error) {
	table := themes.DefaultTable()
	if cfg.Paths.ThemesFile != "" {
		var err error
		table, err = themes.LoadTable(cfg.Paths.ThemesFile)
		if err != nil {
			return nil, fmt.Errorf("theme table: %w", err)
		}
	}

	return &Pipeline{
		cfg:         cfg,
		loader:      loader.New(cfg.Paths.DataDir, log),
		categorizer: themes.NewCategorizer(table),
		charts:      chart.NewBuilder(cfg.Paths.FiguresDir, chart.DefaultPalette(), cfg.Charts.TopN, log),
		maps:        geomap.NewBuilder(cfg.Paths.FiguresDir, log),
		renderer:    report.NewRenderer(cfg.Paths.TemplateDir, cfg.Paths.TexDir, log),
		pool:        worker.NewPool(cfg.Pipeline.Workers),
		log:         log,
	}, nil
}

// Run executes the complete batch.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.prefetch(ctx); err != nil {
		return fmt.Errorf("load documents: %w", err)
	}
	if err := p.Charts(ctx); err != nil {
		return fmt.Errorf("charts: %w", err)
	}
	if err := p.Maps(ctx); err != nil {
		return fmt.Errorf("maps: %w", err)
	}
	if err := p.Render(ctx); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// prefetch warms the loader with every input document concurrently.
// The file reads dominate startup on cold caches; the figure stages
// that follow hit the parsed copies.
func (p *Pipeline) prefetch(ctx context.Context) error {
	tasks := []worker.Task{
		{Name: "summary stats", Run: func(context.Context) error {
			_, err := p.loader.SummaryStats()
			return err
		}},
		{Name: "top systems", Run: func(context.Context) error {
			_, err := p.loader.TopSystems()
			return err
		}},
		{Name: "top books", Run: func(context.Context) error {
			_, err := p.loader.TopBooks()
			return err
		}},
		{Name: "system holdings", Run: func(context.Context) error {
			_, err := p.loader.SystemHoldings()
			return err
		}},
		{Name: "not-found books", Run: func(context.Context) error {
			_, err := p.loader.NotFoundBooks()
			return err
		}},
		{Name: "system metadata", Run: func(context.Context) error {
			_, err := p.loader.SystemMetadata()
			return err
		}},
		{Name: "geocoded libraries", Run: func(context.Context) error {
			_, err := p.loader.GeocodedLibraries()
			return err
		}},
		{Name: "county boundaries", Run: func(context.Context) error {
			_, err := p.loader.Counties(p.cfg.Paths.GeoJSON)
			return err
		}},
	}
	return p.pool.Run(ctx, tasks)
}

// Charts renders the eight analytics charts.
func (p *Pipeline) Charts(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.ensureDirs(); err != nil {
		return err
	}

	systems, err := p.loader.TopSystems()
	if err != nil {
		return err
	}
	books, err := p.loader.TopBooks()
	if err != nil {
		return err
	}
	metas, err := p.loader.SystemMetadata()
	if err != nil {
		return err
	}
	stats, err := p.loader.SummaryStats()
	if err != nil {
		return err
	}

	steps := []func() error{
		func() error { return p.charts.TopSystemsBar(systems) },
		func() error { return p.charts.TopBooksBar(books) },
		func() error { return p.charts.BooksPerSystemHist(systems) },
		func() error { return p.charts.SystemsPerBookHist(books) },
		func() error { return p.charts.VendorDonut(metas) },
		func() error { return p.charts.AvailabilityBar(systems) },
		func() error { return p.charts.FoundDonut(stats) },
		func() error { return p.charts.CopiesScatter(systems) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Maps renders the five geographic figures.
func (p *Pipeline) Maps(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.ensureDirs(); err != nil {
		return err
	}

	libs, err := p.loader.GeocodedLibraries()
	if err != nil {
		return err
	}
	counties, err := p.loader.Counties(p.cfg.Paths.GeoJSON)
	if err != nil {
		return err
	}

	steps := []func() error{
		func() error { return p.maps.Overview(libs, counties) },
		func() error { return p.maps.Choropleth(libs, counties) },
		func() error {
			return p.maps.Inset(libs, counties, geomap.DFWBounds,
				"Dallas–Fort Worth Metroplex", "dfw_inset_map.pdf", insetLabelThreshold)
		},
		func() error {
			return p.maps.Inset(libs, counties, geomap.HoustonBounds,
				"Houston Metro Area", "houston_inset_map.pdf", insetLabelThreshold)
		},
		func() error { return p.maps.Availability(libs, counties) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// Render builds the template context and renders the narrative
// sources.
func (p *Pipeline) Render(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.ensureDirs(); err != nil {
		return err
	}

	in := report.Inputs{}
	var err error
	if in.Stats, err = p.loader.SummaryStats(); err != nil {
		return err
	}
	if in.TopBooks, err = p.loader.TopBooks(); err != nil {
		return err
	}
	if in.TopSystems, err = p.loader.TopSystems(); err != nil {
		return err
	}
	if in.Holdings, err = p.loader.SystemHoldings(); err != nil {
		return err
	}
	if in.NotFound, err = p.loader.NotFoundBooks(); err != nil {
		return err
	}
	if in.Metadata, err = p.loader.SystemMetadata(); err != nil {
		return err
	}

	rctx := report.BuildContext(in, p.categorizer, time.Now())
	return p.renderer.RenderAll(rctx)
}

// ensureDirs creates the output directories. MkdirAll is a no-op when
// they already exist, so every entry point can call it.
func (p *Pipeline) ensureDirs() error {
	for _, dir := range []string{p.cfg.Paths.FiguresDir, p.cfg.Paths.TexDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
