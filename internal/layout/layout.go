// Package layout expands a declarative periodic table layout into a grid of
// cells.
//
// Each [Row] names how many elements sit on the left, how many on the right
// and how many belong to the series block (lanthanides/actinides) that is
// normally hidden. [Expand] walks the rows and hands out element indices in
// emission order: front, series, padding, back.
package layout

// Row describes one period of the table.
type Row struct {
	Front  int `yaml:"front" json:"front"`
	Back   int `yaml:"back" json:"back"`
	Series int `yaml:"series" json:"series"`
}

// Kind distinguishes element cells from spacers.
type Kind int

const (
	Blank Kind = iota
	Element
)

func (k Kind) String() string {
	if k == Element {
		return "element"
	}
	return "blank"
}

// Cell is a single grid position. Index is only meaningful for Element cells.
type Cell struct {
	Kind   Kind
	Index  int
	Series bool
}

// IsElement reports whether the cell renders a dataset record.
func (c Cell) IsElement() bool {
	return c.Kind == Element
}

// Grid is the expanded table, row by row.
type Grid struct {
	Rows         [][]Cell
	columnCount  int
	seriesLength int
}

// Columns is the widest front+back span.
func (g Grid) Columns() int {
	return g.columnCount
}

// SeriesLength is the widest series block.
func (g Grid) SeriesLength() int {
	return g.seriesLength
}

// Width is the number of cells in every row.
func (g Grid) Width() int {
	return g.columnCount + g.seriesLength
}

// Elements returns element cells in emission order.
func (g Grid) Elements() []Cell {
	var out []Cell
	for _, row := range g.Rows {
		for _, c := range row {
			if c.IsElement() {
				out = append(out, c)
			}
		}
	}
	return out
}

// Visible returns a row with series cells removed when the series is hidden.
func (g Grid) Visible(row int, seriesHidden bool) []Cell {
	cells := g.Rows[row]
	if !seriesHidden {
		return cells
	}
	out := make([]Cell, 0, g.columnCount)
	for _, c := range cells {
		if !c.Series {
			out = append(out, c)
		}
	}
	return out
}

func dimensions(rows []Row) (columnCount, seriesLength int) {
	for _, r := range rows {
		columnCount = max(columnCount, r.Front+r.Back)
		seriesLength = max(seriesLength, r.Series)
	}
	return columnCount, seriesLength
}

// Demand counts the element indices a layout consumes.
func Demand(rows []Row) int {
	n := 0
	for _, r := range rows {
		n += r.Front + r.Series + r.Back
	}
	return n
}

// Expand builds the grid for rows against a dataset of elementCount records.
// A layout that needs more records than exist returns an *OverrunError.
// Surplus records are simply left out.
func Expand(rows []Row, elementCount int) (Grid, error) {
	columnCount, seriesLength := dimensions(rows)
	g := Grid{
		Rows:         make([][]Cell, 0, len(rows)),
		columnCount:  columnCount,
		seriesLength: seriesLength,
	}

	next := 0
	for i, r := range rows {
		if need := next + r.Front + r.Series + r.Back; need > elementCount {
			return Grid{}, &OverrunError{Row: i, Demanded: need, Available: elementCount}
		}

		cells := make([]Cell, 0, columnCount+seriesLength)
		for range r.Front {
			cells = append(cells, Cell{Kind: Element, Index: next})
			next++
		}
		for range r.Series {
			cells = append(cells, Cell{Kind: Element, Index: next, Series: true})
			next++
		}
		for range seriesLength - r.Series {
			cells = append(cells, Cell{Kind: Blank, Series: true})
		}
		for range columnCount - r.Front - r.Back {
			cells = append(cells, Cell{Kind: Blank})
		}
		for range r.Back {
			cells = append(cells, Cell{Kind: Element, Index: next})
			next++
		}
		g.Rows = append(g.Rows, cells)
	}
	return g, nil
}
