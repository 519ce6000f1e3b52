package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tbbooher/ArgusPanoptes/internal/model"
	"github.com/tbbooher/ArgusPanoptes/internal/pipeline"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the complete report: charts, maps, and narrative sources",
	Long: `Report runs the full batch:
- Render the eight analytics charts (bars, histograms, donuts, scatter)
- Render the five geographic figures (overview, choropleth, metro
  insets, availability)
- Build the narrative context and render the .tex sources

Example:
  argus report
  argus report --data-dir output/data --figures-dir output/figures
  argus report --themes my_keywords.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(cmd, func(ctx context.Context, p *pipeline.Pipeline) error {
			return p.Run(ctx)
		})
	},
}

// chartsCmd represents the charts command
var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Generate only the analytics charts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(cmd, func(ctx context.Context, p *pipeline.Pipeline) error {
			return p.Charts(ctx)
		})
	},
}

// mapsCmd represents the maps command
var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "Generate only the geographic figures",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(cmd, func(ctx context.Context, p *pipeline.Pipeline) error {
			return p.Maps(ctx)
		})
	},
}

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render only the narrative .tex sources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStage(cmd, func(ctx context.Context, p *pipeline.Pipeline) error {
			return p.Render(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.AddCommand(renderCmd)

	defaults := model.DefaultConfig()
	for _, cmd := range []*cobra.Command{reportCmd, chartsCmd, mapsCmd, renderCmd} {
		cmd.Flags().String("data-dir", defaults.Paths.DataDir, "directory with the extracted JSON documents")
		cmd.Flags().String("figures-dir", defaults.Paths.FiguresDir, "output directory for figure artifacts")
		cmd.Flags().String("tex-dir", defaults.Paths.TexDir, "output directory for rendered .tex sources")
		cmd.Flags().String("template-dir", defaults.Paths.TemplateDir, "directory with the narrative templates")
		cmd.Flags().String("geojson", defaults.Paths.GeoJSON, "county boundary GeoJSON file")
		cmd.Flags().String("themes", "", "YAML theme keyword table (default: embedded table)")
		cmd.Flags().Int("top-n", defaults.Charts.TopN, "number of systems/books in the top-N charts")
		cmd.Flags().Int("workers", defaults.Pipeline.Workers, "concurrency of the document prefetch")
	}
}

// buildConfig assembles the run configuration. Binding the command's
// flags into viper gives every value the flag > env > file > default
// precedence; ARGUS_DATA_DIR and a data-dir config-file key both reach
// the same setting.
func buildConfig(cmd *cobra.Command) (*model.Config, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	cfg := model.DefaultConfig()
	cfg.Paths.DataDir = viper.GetString("data-dir")
	cfg.Paths.FiguresDir = viper.GetString("figures-dir")
	cfg.Paths.TexDir = viper.GetString("tex-dir")
	cfg.Paths.TemplateDir = viper.GetString("template-dir")
	cfg.Paths.GeoJSON = viper.GetString("geojson")
	cfg.Paths.ThemesFile = viper.GetString("themes")
	cfg.Charts.TopN = viper.GetInt("top-n")
	cfg.Pipeline.Workers = viper.GetInt("workers")
	cfg.Output.Verbose = viper.GetBool("verbose")
	return cfg, nil
}

// runStage builds the pipeline and runs one stage of it.
func runStage(cmd *cobra.Command, stage func(context.Context, *pipeline.Pipeline) error) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if verbose {
		fmt.Fprintf(os.Stderr, "Data dir:    %s\n", cfg.Paths.DataDir)
		fmt.Fprintf(os.Stderr, "Figures dir: %s\n", cfg.Paths.FiguresDir)
		fmt.Fprintf(os.Stderr, "Tex dir:     %s\n", cfg.Paths.TexDir)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("pipeline setup: %w", err)
	}

	if err := stage(context.Background(), p); err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}
	return nil
}
