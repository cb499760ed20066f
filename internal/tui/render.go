package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/san-kum/ptable/internal/anim"
	"github.com/san-kum/ptable/internal/elements"
	"github.com/san-kum/ptable/internal/palette"
)

// Pos is a grid position.
type Pos struct {
	Row, Col int
}

// Frame holds what one rendering of the table needs.
type Frame struct {
	Views     []anim.CellView
	State     anim.State
	CellWidth int
	Cursor    *Pos
}

func cellLines(cellWidth int) int {
	if cellWidth >= 6 {
		return 3
	}
	return 2
}

func fit(s string, w int) string {
	return runewidth.Truncate(s, w, "")
}

func renderCell(v anim.CellView, cellWidth int, selected bool) string {
	lines := cellLines(cellWidth)
	style := lipgloss.NewStyle().Width(cellWidth).Height(lines).MaxHeight(lines)
	if v.Blank {
		return style.Render("")
	}

	style = style.
		Background(lipgloss.Color(v.RGB.Hex())).
		Foreground(lipgloss.Color(v.RGB.Foreground().Hex()))
	if selected {
		style = style.Reverse(true).Bold(true)
	}

	content := []string{
		fit(fmt.Sprint(v.Rank), cellWidth),
		lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, lipgloss.NewStyle().Bold(true).Render(fit(v.Symbol, cellWidth))),
	}
	if lines == 3 {
		content = append(content, fit(v.Secondary, cellWidth))
	}
	return style.Render(strings.Join(content, "\n"))
}

// RenderGrid draws the table. Series cells are skipped while hidden.
func RenderGrid(f Frame) string {
	var rows [][]string
	for _, v := range f.Views {
		if v.Series && f.State.SeriesHidden {
			continue
		}
		for len(rows) <= v.Row {
			rows = append(rows, nil)
		}
		selected := f.Cursor != nil && f.Cursor.Row == v.Row && f.Cursor.Col == v.Col
		rows[v.Row] = append(rows[v.Row], renderCell(v, f.CellWidth, selected))
	}

	out := make([]string, len(rows))
	for i, cells := range rows {
		out[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// RenderTooltip describes one element in a bordered panel.
func RenderTooltip(el elements.Element, rank int, theme Theme) string {
	label := lipgloss.NewStyle().Foreground(theme.Muted).Width(18)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(palette.ForElectronegativity(el.Electronegativity).Hex())).
		Render("  ")

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d  %s  %s", rank, el.Symbol, el.Name)))
	b.WriteString("\n\n")
	b.WriteString(label.Render("atomic mass") + value.Render(el.MassLabel()) + "\n")
	b.WriteString(label.Render("electronegativity") + value.Render(el.ElectronegativityLabel()) + " " + swatch + "\n")
	if el.Source != "" {
		b.WriteString(label.Render("source") + value.Render(el.Source) + "\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(strings.TrimRight(b.String(), "\n"))
}
