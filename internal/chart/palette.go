// Package chart renders the report's analytics figures. All builders
// are deterministic: the same records and styling always produce the
// same artifact.
package chart

import (
	"image/color"
	"strconv"
)

// Palette carries the report's fixed colors. It is injected into the
// builders rather than read from package globals so multiple report
// variants can restyle independently.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Warm      color.Color
	Found     color.Color
	NotFound  color.Color
	// Neutral is the fallback for vendors outside the fixed map and
	// for no-data fills.
	Neutral color.Color
	Vendor  map[string]color.Color
}

// DefaultPalette returns the standard report palette.
func DefaultPalette() Palette {
	return Palette{
		Primary:   hex("#2563eb"),
		Secondary: hex("#7c3aed"),
		Accent:    hex("#059669"),
		Warm:      hex("#dc2626"),
		Found:     hex("#2563eb"),
		NotFound:  hex("#d1d5db"),
		Neutral:   hex("#bdc3c7"),
		Vendor: map[string]color.Color{
			"apollo":          hex("#e74c3c"),
			"sirsi_dynix":     hex("#3498db"),
			"aspen_discovery": hex("#2ecc71"),
			"atriuum":         hex("#9b59b6"),
			"tlc":             hex("#f39c12"),
			"bibliocommons":   hex("#1abc9c"),
			"polaris":         hex("#e67e22"),
			"koha":            hex("#34495e"),
			"spydus":          hex("#95a5a6"),
			"unknown":         hex("#bdc3c7"),
		},
	}
}

// VendorColor returns the fixed color for a vendor, falling back to
// the neutral shade for vendors outside the map.
func (p Palette) VendorColor(vendor string) color.Color {
	if c, ok := p.Vendor[vendor]; ok {
		return c
	}
	return p.Neutral
}

// hex parses a #rrggbb literal. Malformed literals come out black;
// the palette literals above are fixed.
func hex(s string) color.RGBA {
	c := color.RGBA{A: 255}
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			c.R = uint8(v >> 16)
			c.G = uint8(v >> 8)
			c.B = uint8(v)
		}
	}
	return c
}
