package anim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/ptable/internal/elements"
	"github.com/san-kum/ptable/internal/layout"
	"github.com/san-kum/ptable/internal/palette"
)

// Controller drives the colour animation for one grid.
type Controller struct {
	ds    *elements.Dataset
	grid  layout.Grid
	opts  Options
	state State
}

// New expands rows against ds. The series block starts hidden.
func New(ds *elements.Dataset, rows []layout.Row, opts Options) (*Controller, error) {
	if ds == nil {
		return nil, fmt.Errorf("anim: nil dataset")
	}
	if !opts.Range.Valid() {
		return nil, fmt.Errorf("anim: invalid colour range [%d,%d]", opts.Range.Min, opts.Range.Max)
	}
	grid, err := layout.Expand(rows, ds.Len())
	if err != nil {
		return nil, err
	}
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	return &Controller{
		ds:   ds,
		grid: grid,
		opts: opts,
		state: State{
			Mode:         opts.Mode,
			SeriesHidden: true,
		},
	}, nil
}

func (c *Controller) State() State               { return c.state }
func (c *Controller) Grid() layout.Grid          { return c.grid }
func (c *Controller) Dataset() *elements.Dataset { return c.ds }

// SetTick positions the counter directly, for one-shot frames.
func (c *Controller) SetTick(t int) error {
	if t < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTick, t)
	}
	c.state.Tick = t
	return nil
}

// ToggleSeries shows or hides the series block.
func (c *Controller) ToggleSeries() bool {
	c.state.SeriesHidden = !c.state.SeriesHidden
	return c.state.SeriesHidden
}

// SetMode switches the colouring mode.
func (c *Controller) SetMode(m palette.Mode) {
	c.state.Mode = m
}

// CycleMode flips between the two modes and returns the new one.
func (c *Controller) CycleMode() palette.Mode {
	c.state.Mode = c.state.Mode.Next()
	return c.state.Mode
}

// Step advances one frame. The counter only moves in the default mode.
func (c *Controller) Step() []CellView {
	if c.state.Mode == palette.Default {
		c.state.Tick += c.opts.Step
	}
	return c.Views()
}

// Views computes the current frame without advancing.
func (c *Controller) Views() []CellView {
	views := make([]CellView, 0, len(c.grid.Rows)*c.grid.Width())
	for r, row := range c.grid.Rows {
		for col, cell := range row {
			views = append(views, c.view(r, col, cell))
		}
	}
	return views
}

func (c *Controller) view(r, col int, cell layout.Cell) CellView {
	v := CellView{Row: r, Col: col, Series: cell.Series}
	if !cell.IsElement() {
		v.Blank = true
		return v
	}

	el := c.ds.Elements[cell.Index]
	v.Rank = cell.Index + 1
	v.Symbol = el.Symbol
	v.Name = el.Name

	switch c.state.Mode {
	case palette.Electronegativity:
		v.Secondary = el.ElectronegativityLabel()
		v.RGB = palette.ForElectronegativity(el.Electronegativity)
	default:
		v.Secondary = el.MassLabel()
		v.RGB = c.opts.Weights.ColorFor(cell.Index, c.state.Tick, c.opts.Range)
	}
	return v
}

// ElementAt returns the record under a grid position, if any.
func (c *Controller) ElementAt(row, col int) (elements.Element, int, bool) {
	if row < 0 || row >= len(c.grid.Rows) || col < 0 || col >= len(c.grid.Rows[row]) {
		return elements.Element{}, 0, false
	}
	cell := c.grid.Rows[row][col]
	if !cell.IsElement() {
		return elements.Element{}, 0, false
	}
	return c.ds.Elements[cell.Index], cell.Index + 1, true
}

// Run renders a frame immediately and then one per period until ctx ends.
func (c *Controller) Run(ctx context.Context, period time.Duration, r Renderer) error {
	if period <= 0 {
		return fmt.Errorf("anim: period must be positive, got %v", period)
	}
	r.Render(c.Views(), c.state)

	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Render(c.Step(), c.state)
		}
	}
}

// CellWidth sizes cells from the terminal width, leaving a margin of two
// cells with the series hidden and about four with it shown.
func CellWidth(termWidth int, seriesHidden bool) int {
	div := 35.7
	if seriesHidden {
		div = 20
	}
	w := int(float64(termWidth) / div)
	return max(w, 3)
}
