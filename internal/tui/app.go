package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ptable/internal/anim"
	"github.com/san-kum/ptable/internal/elements"
	"github.com/san-kum/ptable/internal/layout"
	"github.com/san-kum/ptable/internal/palette"
)

// Loader produces the dataset, typically by fetching it once.
type Loader func(ctx context.Context) (*elements.Dataset, error)

// Options configures the interactive app.
type Options struct {
	Rows    []layout.Row
	Anim    anim.Options
	Period  time.Duration
	Timeout time.Duration
	Theme   string
}

type datasetMsg struct{ ds *elements.Dataset }
type loadErrMsg struct{ err error }
type TickMsg time.Time

// App is the Bubble Tea model for the interactive table.
type App struct {
	opts     Options
	load     Loader
	logger   *slog.Logger
	ctrl     *anim.Controller
	views    []anim.CellView
	keys     KeyMap
	help     help.Model
	theme    Theme
	cursor   Pos
	width    int
	height   int
	loading  bool
	err      error
	showHelp bool
}

func NewApp(opts Options, load Loader, logger *slog.Logger) App {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = elements.DefaultTimeout
	}
	return App{
		opts:    opts,
		load:    load,
		logger:  logger,
		keys:    DefaultKeyMap,
		help:    help.New(),
		theme:   GetTheme(opts.Theme),
		width:   80,
		height:  24,
		loading: true,
	}
}

func (a App) Init() tea.Cmd {
	load, timeout := a.load, a.opts.Timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ds, err := load(ctx)
		if err != nil {
			return loadErrMsg{err}
		}
		return datasetMsg{ds}
	}
}

func (a App) tick() tea.Cmd {
	return tea.Tick(a.opts.Period, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil
	case datasetMsg:
		a.loading = false
		ctrl, err := anim.New(msg.ds, a.opts.Rows, a.opts.Anim)
		if err != nil {
			a.logger.Error("cannot build table", "err", err)
			a.err = err
			return a, nil
		}
		a.ctrl = ctrl
		a.views = ctrl.Views()
		a.cursor = a.firstElement()
		a.logger.Debug("table ready", "elements", msg.ds.Len(), "rows", len(ctrl.Grid().Rows))
		return a, a.tick()
	case loadErrMsg:
		a.loading = false
		a.err = msg.err
		a.logger.Error("dataset unavailable", "err", msg.err)
		return a, nil
	case TickMsg:
		if a.ctrl == nil {
			return a, nil
		}
		a.views = a.ctrl.Step()
		return a, a.tick()
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
	case key.Matches(msg, a.keys.Theme):
		a.theme = NextTheme(a.theme)
	}
	if a.ctrl == nil {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Series):
		a.ctrl.ToggleSeries()
		if a.hidden(a.cursor) {
			a.cursor = a.firstElement()
		}
	case key.Matches(msg, a.keys.Mode):
		a.ctrl.CycleMode()
		a.views = a.ctrl.Views()
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1, 0)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1, 0)
	case key.Matches(msg, a.keys.Left):
		a.moveCursor(0, -1)
	case key.Matches(msg, a.keys.Right):
		a.moveCursor(0, 1)
	}
	return a, nil
}

func (a App) hidden(p Pos) bool {
	grid := a.ctrl.Grid()
	return a.ctrl.State().SeriesHidden && grid.Rows[p.Row][p.Col].Series
}

// moveCursor steps over blank and hidden cells until it lands on an element
// or leaves the grid, in which case the cursor stays put.
func (a *App) moveCursor(dr, dc int) {
	grid := a.ctrl.Grid()
	p := a.cursor
	for {
		p.Row += dr
		p.Col += dc
		if p.Row < 0 || p.Row >= len(grid.Rows) || p.Col < 0 || p.Col >= grid.Width() {
			return
		}
		if grid.Rows[p.Row][p.Col].IsElement() && !a.hidden(p) {
			a.cursor = p
			return
		}
		if dr != 0 {
			// vertical moves may land on a spacer column; search sideways
			if q, ok := a.nearestInRow(p); ok {
				a.cursor = q
				return
			}
		}
	}
}

func (a App) nearestInRow(p Pos) (Pos, bool) {
	row := a.ctrl.Grid().Rows[p.Row]
	for d := 1; d < len(row); d++ {
		for _, c := range []int{p.Col - d, p.Col + d} {
			q := Pos{Row: p.Row, Col: c}
			if c >= 0 && c < len(row) && row[c].IsElement() && !a.hidden(q) {
				return q, true
			}
		}
	}
	return Pos{}, false
}

func (a App) firstElement() Pos {
	for r, row := range a.ctrl.Grid().Rows {
		for c, cell := range row {
			p := Pos{Row: r, Col: c}
			if cell.IsElement() && !a.hidden(p) {
				return p
			}
		}
	}
	return Pos{}
}

func (a App) View() string {
	title := lipgloss.NewStyle().Foreground(a.theme.Primary).Bold(true).Render("PERIODIC TABLE")
	muted := lipgloss.NewStyle().Foreground(a.theme.Muted)

	var b strings.Builder
	b.WriteString("\n  " + title)

	switch {
	case a.err != nil:
		b.WriteString("\n\n  " + lipgloss.NewStyle().Foreground(a.theme.Error).Render(errorLine(a.err)) + "\n")
		b.WriteString("\n  " + a.help.View(a.keys) + "\n")
		return b.String()
	case a.loading || a.ctrl == nil:
		b.WriteString("\n\n  " + muted.Render("loading dataset…") + "\n")
		return b.String()
	}

	st := a.ctrl.State()
	b.WriteString("  " + muted.Render("mode: "+st.Mode.String()))
	if st.Mode == palette.Default {
		b.WriteString(muted.Render("  showing atomic mass"))
	}
	b.WriteString("\n\n")

	grid := RenderGrid(Frame{
		Views:     a.views,
		State:     st,
		CellWidth: anim.CellWidth(a.width, st.SeriesHidden),
		Cursor:    &a.cursor,
	})
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(grid))
	b.WriteString("\n\n")

	if el, rank, ok := a.ctrl.ElementAt(a.cursor.Row, a.cursor.Col); ok {
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(RenderTooltip(el, rank, a.theme)))
		b.WriteString("\n")
	}
	b.WriteString("\n  " + a.help.View(a.keys) + "\n")
	return b.String()
}

func errorLine(err error) string {
	var se *elements.StatusError
	switch {
	case errors.As(err, &se):
		return "dataset request failed: " + se.Status
	case errors.Is(err, layout.ErrOverrun):
		return "layout does not fit the dataset: " + err.Error()
	default:
		return "dataset unavailable: " + err.Error()
	}
}

// Run starts the interactive program and blocks until it exits.
func Run(opts Options, load Loader, logger *slog.Logger) error {
	_, err := tea.NewProgram(NewApp(opts, load, logger), tea.WithAltScreen()).Run()
	return err
}
