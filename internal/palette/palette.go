package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/rook-computer/triface/internal/sampler"
)

// Sentinel is returned by FromHue for hues outside [0, 1).
var Sentinel = color.RGBA{A: 0xFF}

const (
	edgeCount = 6
	edgeSteps = 256
)

// FromHue maps hue in [0, 1) onto the six edges of the RGB cube that join the
// primaries to the secondaries (red, yellow, green, cyan, blue, magenta, back
// to red). This is close to an HSV color with full saturation and value.
func FromHue(hue float64) color.RGBA {
	if math.IsNaN(hue) || hue < 0 || hue >= 1 {
		return Sentinel
	}
	scaled := edgeCount * hue
	edge := int(scaled)
	dist := int(edgeSteps * (scaled - float64(edge)))
	return edgeColor(edge, dist)
}

// FromRandom picks the edge and the position along it independently.
func FromRandom(s *sampler.Sampler) color.RGBA {
	return edgeColor(s.Intn(edgeCount), s.Intn(edgeSteps))
}

func edgeColor(edge, dist int) color.RGBA {
	if dist < 0 {
		dist = 0
	}
	if dist > 255 {
		dist = 255
	}
	d := uint8(dist)
	switch edge {
	case 0: // red -> yellow
		return color.RGBA{R: 255, G: d, B: 0, A: 0xFF}
	case 1: // yellow -> green
		return color.RGBA{R: 255 - d, G: 255, B: 0, A: 0xFF}
	case 2: // green -> cyan
		return color.RGBA{R: 0, G: 255, B: d, A: 0xFF}
	case 3: // cyan -> blue
		return color.RGBA{R: 0, G: 255 - d, B: 255, A: 0xFF}
	case 4: // blue -> magenta
		return color.RGBA{R: d, G: 0, B: 255, A: 0xFF}
	case 5: // magenta -> red
		return color.RGBA{R: 255, G: 0, B: 255 - d, A: 0xFF}
	}
	return Sentinel
}

// IsBright reports whether c lies on one of the primary/secondary cube edges:
// at least one channel full and at least one channel off.
func IsBright(c color.RGBA) bool {
	full := c.R == 255 || c.G == 255 || c.B == 255
	off := c.R == 0 || c.G == 0 || c.B == 0
	return full && off
}

// Hex formats c as #rrggbb for log lines.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
