package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

// templateFiles are the narrative templates, rendered in order. The
// output name strips the .tmpl suffix.
var templateFiles = []string{
	"report.tex.tmpl",
	"executive_summary.tex.tmpl",
	"analytics.tex.tmpl",
	"library_profiles.tex.tmpl",
	"appendix.tex.tmpl",
}

// preambleFile is copied through unchanged.
const preambleFile = "preamble.tex"

// Renderer renders the narrative templates into .tex sources.
type Renderer struct {
	templateDir string
	texDir      string
	log         *zap.Logger
}

// NewRenderer creates a renderer reading templates from templateDir
// and writing .tex files into texDir.
func NewRenderer(templateDir, texDir string, log *zap.Logger) *Renderer {
	return &Renderer{templateDir: templateDir, texDir: texDir, log: log}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"escape":       Escape,
		"truncate":     Truncate,
		"joinAuthors":  JoinAuthors,
		"vendorPretty": VendorPretty,
		"formatNumber": FormatNumber,
	}
}

// RenderAll copies the static preamble and renders every template
// against the context.
func (r *Renderer) RenderAll(ctx Context) error {
	if err := r.copyPreamble(); err != nil {
		return err
	}

	for _, name := range templateFiles {
		if err := r.render(name, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) render(name string, ctx Context) error {
	tmpl, err := template.New(name).Funcs(funcMap()).ParseFiles(filepath.Join(r.templateDir, name))
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}

	outName := strings.TrimSuffix(name, ".tmpl")
	out, err := os.Create(filepath.Join(r.texDir, outName))
	if err != nil {
		return fmt.Errorf("create %s: %w", outName, err)
	}

	if err := tmpl.Execute(out, ctx); err != nil {
		out.Close()
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outName, err)
	}

	r.log.Info("template rendered", zap.String("file", outName))
	return nil
}

func (r *Renderer) copyPreamble() error {
	raw, err := os.ReadFile(filepath.Join(r.templateDir, preambleFile))
	if err != nil {
		return fmt.Errorf("read preamble: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.texDir, preambleFile), raw, 0o644); err != nil {
		return fmt.Errorf("write preamble: %w", err)
	}
	r.log.Info("template rendered", zap.String("file", preambleFile))
	return nil
}
