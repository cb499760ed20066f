package config

import (
	"sort"

	"github.com/san-kum/ptable/internal/layout"
)

// ListPresets returns the layout preset names in order.
func ListPresets() []string {
	names := make([]string, 0, len(layout.Presets))
	for name := range layout.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
