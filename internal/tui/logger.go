package tui

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// NewLogger returns the logger used while the program owns the terminal.
// Records are appended to path when it is set and dropped otherwise; they
// never reach stdout or stderr. The returned func closes the log file.
func NewLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "ptable")
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f.Close, nil
}
