package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/ptable/internal/anim"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer repaints the whole table on every frame using plain escape
// codes. It needs no input handling, so it also works when piped.
type LiveRenderer struct {
	out       io.Writer
	cellWidth int
	clear     bool
	frames    int
}

func NewLiveRenderer(out io.Writer, cellWidth int, clear bool) *LiveRenderer {
	return &LiveRenderer{out: out, cellWidth: cellWidth, clear: clear}
}

func (r *LiveRenderer) Render(views []anim.CellView, st anim.State) {
	r.frames++

	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  mode=%s  tick=%d  frame=%d\n\n", st.Mode, st.Tick, r.frames))
	b.WriteString(RenderGrid(Frame{Views: views, State: st, CellWidth: r.cellWidth}))
	b.WriteString("\n")

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
