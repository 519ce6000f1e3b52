package model

// Config is the complete runtime configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths" json:"paths"`
	Charts   ChartsConfig   `yaml:"charts" json:"charts"`
	Pipeline PipelineConfig `yaml:"pipeline" json:"pipeline"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// PathsConfig locates the input documents and output directories.
type PathsConfig struct {
	DataDir     string `yaml:"data_dir" json:"data_dir"`
	FiguresDir  string `yaml:"figures_dir" json:"figures_dir"`
	TexDir      string `yaml:"tex_dir" json:"tex_dir"`
	TemplateDir string `yaml:"template_dir" json:"template_dir"`
	GeoJSON     string `yaml:"geojson" json:"geojson"`
	// ThemesFile optionally overrides the embedded theme keyword table.
	ThemesFile string `yaml:"themes_file,omitempty" json:"themes_file,omitempty"`
}

// ChartsConfig tunes the chart builders.
type ChartsConfig struct {
	TopN int `yaml:"top_n" json:"top_n"`
}

// PipelineConfig tunes batch execution.
type PipelineConfig struct {
	// Workers bounds the concurrency of the document prefetch.
	Workers int `yaml:"workers" json:"workers"`
}

// OutputConfig controls run output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			DataDir:     "output/data",
			FiguresDir:  "output/figures",
			TexDir:      "output/tex",
			TemplateDir: "template",
			GeoJSON:     "tx_counties.geojson",
		},
		Charts: ChartsConfig{
			TopN: 25,
		},
		Pipeline: PipelineConfig{
			Workers: 4,
		},
	}
}
