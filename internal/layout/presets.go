package layout

// Standard is the usual 7-period table with the f-block in rows 6 and 7.
var Standard = []Row{
	{Front: 1, Back: 1},
	{Front: 2, Back: 6},
	{Front: 2, Back: 6},
	{Front: 3, Back: 15},
	{Front: 3, Back: 15},
	{Front: 3, Back: 15, Series: 14},
	{Front: 3, Back: 15, Series: 14},
}

// Expanded adds an eighth period for the first hypothetical elements.
// Most published datasets stop at 119 records, which is short of what this
// layout demands.
var Expanded = append(append([]Row(nil), Standard...), Row{Front: 2})

var Presets = map[string][]Row{
	"standard": Standard,
	"expanded": Expanded,
}

// Preset returns a copy of the named layout.
func Preset(name string) ([]Row, bool) {
	rows, ok := Presets[name]
	if !ok {
		return nil, false
	}
	return append([]Row(nil), rows...), true
}
