package palette

import (
	"testing"

	"github.com/onsi/gomega"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{118, 118},
		{255, 255},
		{256, 255},
		{300, 211},
		{511, 0},
		{512, 0},
		{600, 88},
		{768, 255},
		{-1, 0},
		{-256, 255},
	}

	for _, tt := range tests {
		if got := Wrap(tt.in); got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapPeriod(t *testing.T) {
	g := gomega.NewWithT(t)
	for v := -600.0; v < 1200; v += 7.5 {
		g.Expect(Wrap(v+512)).To(gomega.Equal(Wrap(v)), "v=%v", v)
	}
}

func TestColorForOrigin(t *testing.T) {
	g := gomega.NewWithT(t)
	// red 118 stays in the first band, green and blue start at zero.
	g.Expect(ColorFor(0, 0, DefaultRange)).To(gomega.Equal(RGB{R: 171, G: 125, B: 125}))
}

func TestColorForBounds(t *testing.T) {
	g := gomega.NewWithT(t)
	ranges := []Range{DefaultRange, FullRange, {Min: 10, Max: 20}, {Min: 50, Max: 50}}
	for _, rng := range ranges {
		for i := 0; i < 120; i += 3 {
			for tick := 0; tick < 20000; tick += 149 {
				c := ColorFor(i, tick, rng)
				for _, ch := range []uint8{c.R, c.G, c.B} {
					g.Expect(int(ch)).To(gomega.BeNumerically(">=", rng.Min))
					g.Expect(int(ch)).To(gomega.BeNumerically("<=", rng.Max))
				}
			}
		}
	}
}

func TestColorForPeriodic(t *testing.T) {
	g := gomega.NewWithT(t)
	unit := Weights{
		R: Linear{Base: 118, Position: -1, Tick: 1},
		G: Linear{Position: 1, Tick: 1},
		B: Linear{Position: 2, Tick: 1},
	}
	for i := 0; i < 118; i += 13 {
		for tick := 0; tick < 3000; tick += 150 {
			g.Expect(unit.ColorFor(i, tick+512, DefaultRange)).To(gomega.Equal(unit.ColorFor(i, tick, DefaultRange)))
		}
	}

	// red has unit tick weight under the default weights too
	for tick := 0; tick < 3000; tick += 37 {
		g.Expect(ColorFor(5, tick+512, DefaultRange).R).To(gomega.Equal(ColorFor(5, tick, DefaultRange).R))
	}
}

func TestColorForIdempotent(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(ColorFor(42, 1050, DefaultRange)).To(gomega.Equal(ColorFor(42, 1050, DefaultRange)))
}

func TestColorForPingPong(t *testing.T) {
	g := gomega.NewWithT(t)
	w := Weights{R: Linear{Tick: 1}}
	// rising through the first band, falling through the second
	g.Expect(w.ColorFor(0, 100, FullRange).R).To(gomega.Equal(uint8(100)))
	g.Expect(w.ColorFor(0, 356, FullRange).R).To(gomega.Equal(uint8(155)))
	g.Expect(w.ColorFor(0, 612, FullRange).R).To(gomega.Equal(uint8(100)))
}

func TestScale(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(Scale(0, DefaultRange)).To(gomega.Equal(125))
	g.Expect(Scale(255, DefaultRange)).To(gomega.Equal(225))
	g.Expect(Scale(128, NeutralRange)).To(gomega.Equal(190))
}

func TestRangeValid(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(DefaultRange.Valid()).To(gomega.BeTrue())
	g.Expect(Range{Min: 200, Max: 100}.Valid()).To(gomega.BeFalse())
	g.Expect(Range{Min: -1, Max: 100}.Valid()).To(gomega.BeFalse())
	g.Expect(Range{Min: 0, Max: 256}.Valid()).To(gomega.BeFalse())
}

func TestHexAndForeground(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(RGB{255, 128, 0}.Hex()).To(gomega.Equal("#ff8000"))
	g.Expect(RGB{250, 250, 250}.Foreground()).To(gomega.Equal(RGB{}))
	g.Expect(RGB{10, 10, 40}.Foreground()).To(gomega.Equal(RGB{255, 255, 255}))
}
