// Package palette defines the fixed nine-colour palette and the ordered
// colour selection a grid is generated from.
package palette

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Size is the number of palette entries.
const Size = 9

// Ref is a 1-based palette reference as stored in grid colour arrays.
type Ref = int

// RGB is one palette colour.
type RGB struct {
	R, G, B uint8
}

// Colorful converts to a go-colorful colour.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Color converts to an opaque image colour.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Hex returns the "#rrggbb" form.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Luminance returns the perceptual lightness in [0, 1].
func (c RGB) Luminance() float64 {
	l, _, _ := c.Colorful().Lab()
	return l
}

// Contrast returns black or white, whichever reads better on c.
func (c RGB) Contrast() RGB {
	if c.Luminance() > 0.6 {
		return RGB{0, 0, 0}
	}
	return RGB{255, 255, 255}
}

// ParseHex parses "#rrggbb".
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("palette: invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

// Entry is a named palette colour.
type Entry struct {
	Name string
	RGB  RGB
}

// Palette is the ordered list of colours refs point into.
type Palette []Entry

// Default is the fixed nine-colour palette.
var Default = Palette{
	{"black", RGB{36, 17, 10}},
	{"grey", RGB{153, 153, 153}},
	{"gelb", RGB{253, 210, 1}},
	{"orange", RGB{255, 95, 17}},
	{"red", RGB{255, 0, 0}},
	{"pink", RGB{224, 150, 182}},
	{"green", RGB{7, 145, 83}},
	{"light blue", RGB{17, 139, 203}},
	{"base blue", RGB{0, 82, 255}},
}

// Backdrop is painted under empty cells (#D3D3D3).
var Backdrop = RGB{211, 211, 211}

// Lookup resolves a 1-based ref.
func (p Palette) Lookup(ref Ref) (RGB, bool) {
	if ref < 1 || ref > len(p) {
		return RGB{}, false
	}
	return p[ref-1].RGB, true
}

// Name returns the colour name for a ref, or "" when out of range.
func (p Palette) Name(ref Ref) string {
	if ref < 1 || ref > len(p) {
		return ""
	}
	return p[ref-1].Name
}

// Valid reports whether ref points into the palette.
func (p Palette) Valid(ref Ref) bool {
	return ref >= 1 && ref <= len(p)
}
