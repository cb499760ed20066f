package palette

import "math"

// Pauling scale bounds of the dataset: caesium and fluorine.
const (
	MinElectronegativity = 0.79
	MaxElectronegativity = 3.98
)

// NeutralRange is the interval unknown values are scaled into.
var NeutralRange = Range{Min: 125, Max: 255}

// NeutralGray is drawn for elements without an electronegativity.
var NeutralGray = gray(128, NeutralRange)

func gray(v float64, r Range) RGB {
	c := uint8(Scale(v, r))
	return RGB{c, c, c}
}

// ForElectronegativity shades from white (least) to red (most
// electronegative). A nil value yields NeutralGray.
func ForElectronegativity(en *float64) RGB {
	if en == nil {
		return NeutralGray
	}
	t := (*en - MinElectronegativity) / (MaxElectronegativity - MinElectronegativity)
	scaled := clamp(math.Floor(t*255), 0, 255)
	c := uint8(255 - scaled)
	return RGB{255, c, c}
}
