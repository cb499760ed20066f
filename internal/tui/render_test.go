package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/ptable/internal/anim"
	"github.com/san-kum/ptable/internal/layout"
)

func TestRenderGridHidesSeries(t *testing.T) {
	ctrl, err := anim.New(testDataset(t, 118), layout.Standard, anim.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	hidden := RenderGrid(Frame{Views: ctrl.Views(), State: ctrl.State(), CellWidth: 4})
	if strings.Contains(hidden, "X57") {
		t.Error("series element rendered while hidden")
	}
	if got := lipgloss.Width(hidden); got != 18*4 {
		t.Errorf("expected width %d, got %d", 18*4, got)
	}

	ctrl.ToggleSeries()
	shown := RenderGrid(Frame{Views: ctrl.Views(), State: ctrl.State(), CellWidth: 4})
	if !strings.Contains(shown, "X57") {
		t.Error("series element missing while shown")
	}
	if got := lipgloss.Width(shown); got != 32*4 {
		t.Errorf("expected width %d, got %d", 32*4, got)
	}
	if got := lipgloss.Height(shown); got != 7*2 {
		t.Errorf("expected height %d, got %d", 7*2, got)
	}
}

func TestLiveRenderer(t *testing.T) {
	ctrl, err := anim.New(testDataset(t, 118), layout.Standard, anim.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, 6, false)
	r.Render(ctrl.Step(), ctrl.State())

	out := buf.String()
	if !strings.Contains(out, "tick=150") {
		t.Errorf("header missing tick: %q", out[:40])
	}
	if !strings.Contains(out, "X0") {
		t.Error("frame missing hydrogen cell")
	}
	if r.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", r.Frames())
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if NextTheme(ThemeMono).Name != "cyberpunk" {
		t.Error("themes should wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names out of sync")
	}
}
