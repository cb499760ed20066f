package palette

// Linear is one channel's raw value: Base + Position*i + Tick*t.
type Linear struct {
	Base     float64 `yaml:"base"`
	Position float64 `yaml:"position"`
	Tick     float64 `yaml:"tick"`
}

func (l Linear) eval(i, tick int) float64 {
	return l.Base + l.Position*float64(i) + l.Tick*float64(tick)
}

// Weights holds the per-channel linear functions.
type Weights struct {
	R Linear `yaml:"r"`
	G Linear `yaml:"g"`
	B Linear `yaml:"b"`
}

// DefaultWeights: red falls with position, blue is twice as position
// sensitive as green.
var DefaultWeights = Weights{
	R: Linear{Base: 118, Position: -1, Tick: 1},
	G: Linear{Position: 1, Tick: 1.1},
	B: Linear{Position: 2, Tick: 1.2},
}

// Raw returns the untransformed channel values.
func (w Weights) Raw(i, tick int) (r, g, b float64) {
	return w.R.eval(i, tick), w.G.eval(i, tick), w.B.eval(i, tick)
}

// ColorFor computes the animated colour of cell i at tick.
func (w Weights) ColorFor(i, tick int, rng Range) RGB {
	r, g, b := w.Raw(i, tick)
	return RGB{
		R: channel(r, rng),
		G: channel(g, rng),
		B: channel(b, rng),
	}
}

// ColorFor uses DefaultWeights.
func ColorFor(i, tick int, rng Range) RGB {
	return DefaultWeights.ColorFor(i, tick, rng)
}
