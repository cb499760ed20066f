// Package palette computes cell colours.
//
// In the default mode each cell's colour is a linear function of its position
// and a tick counter, folded back into [0,255] by a wrap-and-mirror transform
// so that an ever-growing counter produces a bounded ping-pong fade. The
// electronegativity mode maps each element's Pauling value onto a red-to-white
// gradient instead.
package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit colour triple.
type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// Foreground picks black or white text for legibility on c.
func (c RGB) Foreground() RGB {
	l, _, _ := c.colorful().Lab()
	if l > 0.6 {
		return RGB{}
	}
	return RGB{255, 255, 255}
}

// Range is the inclusive output interval channel values are scaled into.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DefaultRange keeps animated cells away from pure black and white.
var DefaultRange = Range{Min: 125, Max: 225}

// FullRange maps channels onto the whole byte.
var FullRange = Range{Min: 0, Max: 255}

// Valid reports whether r lies within [0,255] and is ordered.
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Max <= 255 && r.Min <= r.Max
}

// Wrap folds an unbounded channel value into [0,255]. Values in an even
// band of 256 repeat their low byte; values in an odd band are mirrored, so
// a steadily increasing input rises and falls with period 512.
func Wrap(v float64) float64 {
	rotations := math.Floor(v / 256)
	rem := v - rotations*256
	if math.Mod(rotations, 2) != 0 {
		rem = 255 - rem
	}
	return clamp(rem, 0, 255)
}

// Scale maps v from [0,255] into r.
func Scale(v float64, r Range) int {
	return int(math.Floor(v/255*float64(r.Max-r.Min) + float64(r.Min)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func channel(v float64, r Range) uint8 {
	s := Scale(Wrap(v), r)
	return uint8(max(r.Min, min(r.Max, s)))
}
