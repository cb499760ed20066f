package anim

import (
	"errors"

	"github.com/san-kum/ptable/internal/palette"
)

// ErrNegativeTick is returned when a frame is requested before tick zero.
var ErrNegativeTick = errors.New("anim: negative tick")

// State is the mutable part of the animation.
type State struct {
	Tick         int
	Mode         palette.Mode
	SeriesHidden bool
}

// CellView is what a renderer needs to paint one grid position.
type CellView struct {
	Row, Col  int
	Rank      int
	Symbol    string
	Name      string
	Secondary string
	RGB       palette.RGB
	Series    bool
	Blank     bool
}

// Renderer paints a frame.
type Renderer interface {
	Render(views []CellView, st State)
}

// Options configures a Controller.
type Options struct {
	Range   palette.Range
	Weights palette.Weights
	Step    int
	Mode    palette.Mode
}

// DefaultStep is how far the tick counter moves per frame.
const DefaultStep = 150

// DefaultOptions: range 125-225, step 150, default mode.
func DefaultOptions() Options {
	return Options{
		Range:   palette.DefaultRange,
		Weights: palette.DefaultWeights,
		Step:    DefaultStep,
		Mode:    palette.Default,
	}
}
