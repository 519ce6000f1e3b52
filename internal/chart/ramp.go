package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette/brewer"
)

// Ramp maps values on a fixed domain onto a continuous color scale
// interpolated across brewer palette anchors.
type Ramp struct {
	Min, Max float64
	anchors  []color.Color
}

func newRamp(typ brewer.PaletteType, name string, min, max float64) Ramp {
	pal, err := brewer.GetPalette(typ, name, 9)
	if err != nil {
		// Palette names are fixed at compile time.
		panic(err)
	}
	return Ramp{Min: min, Max: max, anchors: pal.Colors()}
}

// HoldingsRamp is the warm sequential scale used to color holdings
// counts; the domain comes from the observed data range.
func HoldingsRamp(min, max float64) Ramp {
	return newRamp(brewer.TypeSequential, "YlOrRd", min, max)
}

// CoverageRamp is the blue sequential scale used by the choropleth,
// anchored at zero.
func CoverageRamp(max float64) Ramp {
	return newRamp(brewer.TypeSequential, "Blues", 0, max)
}

// AvailabilityRamp is the red-to-green diverging scale for
// availability rates. The domain is fixed to [0, 1] regardless of the
// observed data because it encodes a rate.
func AvailabilityRamp() Ramp {
	return newRamp(brewer.TypeDiverging, "RdYlGn", 0, 1)
}

// At returns the ramp color for v, clamped to the domain.
func (r Ramp) At(v float64) color.Color {
	if len(r.anchors) == 0 {
		return color.Black
	}
	if r.Max <= r.Min {
		return r.anchors[0]
	}

	t := (v - r.Min) / (r.Max - r.Min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	pos := t * float64(len(r.anchors)-1)
	i := int(math.Floor(pos))
	if i >= len(r.anchors)-1 {
		return r.anchors[len(r.anchors)-1]
	}
	return lerp(r.anchors[i], r.anchors[i+1], pos-float64(i))
}

// lerp linearly interpolates between two colors.
func lerp(a, b color.Color, t float64) color.Color {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	mix := func(x, y uint32) uint8 {
		return uint8(uint32(float64(x)+(float64(y)-float64(x))*t) >> 8)
	}
	return color.RGBA{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: 255}
}
