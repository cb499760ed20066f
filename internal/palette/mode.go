package palette

import (
	"fmt"
	"strings"
)

// Mode selects how cells are coloured.
type Mode int

const (
	Default Mode = iota
	Electronegativity
)

var modeNames = map[Mode]string{
	Default:           "default",
	Electronegativity: "electronegativity",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Next cycles between the modes.
func (m Mode) Next() Mode {
	if m == Default {
		return Electronegativity
	}
	return Default
}

// ParseMode accepts a mode name, case-insensitively, or "en" as shorthand.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return Default, nil
	case "electronegativity", "en":
		return Electronegativity, nil
	}
	return Default, fmt.Errorf("palette: unknown mode %q", s)
}
