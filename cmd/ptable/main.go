package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/ptable/internal/config"
	"github.com/san-kum/ptable/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	dataDir     string
	datasetURL  string
	datasetFile string
	layoutName  string
	mode        string
	theme       string
	offline     bool
	debug       bool
	// show
	tick       int
	showSeries bool
	element    string
	cellWidth  int
	// watch
	noClear bool
	// chart
	cell  int
	ticks int
)

// main wires the ptable commands. With no subcommand it opens the
// interactive table.
func main() {
	rootCmd := &cobra.Command{
		Use:           "ptable",
		Short:         "animated periodic table for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "snapshot cache directory")
	pf.StringVar(&datasetURL, "url", "", "dataset url")
	pf.StringVar(&datasetFile, "file", "", "read the dataset from a local json file")
	pf.StringVar(&layoutName, "layout", config.DefaultLayout, "layout preset")
	pf.StringVar(&mode, "mode", "default", "colour mode (default, electronegativity)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("ui theme %v", tui.ThemeNames()))
	pf.BoolVar(&offline, "offline", false, "use the latest cached snapshot instead of fetching")
	pf.BoolVar(&debug, "debug", false, "debug logging")

	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "download the dataset and cache a snapshot",
		Args:  cobra.NoArgs,
		RunE:  fetchDataset,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list cached snapshots",
		Args:  cobra.NoArgs,
		RunE:  listSnapshots,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print a single frame",
		Args:  cobra.NoArgs,
		RunE:  showFrame,
	}
	showCmd.Flags().IntVar(&tick, "tick", 0, "animation tick")
	showCmd.Flags().BoolVar(&showSeries, "series", false, "show the series block")
	showCmd.Flags().StringVar(&element, "element", "", "describe an element by name")
	showCmd.Flags().IntVar(&cellWidth, "cell-width", 6, "cell width in columns")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "animate with plain escape codes until interrupted",
		Args:  cobra.NoArgs,
		RunE:  watchTable,
	}
	watchCmd.Flags().BoolVar(&showSeries, "series", false, "show the series block")
	watchCmd.Flags().IntVar(&cellWidth, "cell-width", 6, "cell width in columns")
	watchCmd.Flags().BoolVar(&noClear, "no-clear", false, "append frames instead of redrawing")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "plot electronegativity by atomic number, or a cell's colour over time",
		Args:  cobra.NoArgs,
		RunE:  chartDataset,
	}
	chartCmd.Flags().IntVar(&cell, "cell", -1, "plot rgb channels of this cell index over ticks")
	chartCmd.Flags().IntVar(&ticks, "ticks", 1024, "tick span for --cell")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [snapshot_id]",
		Short: "export a snapshot (default latest) as json",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [snapshot_id]",
		Short: "export a snapshot (default latest) as csv",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}

	layoutsCmd := &cobra.Command{
		Use:   "layouts",
		Short: "list layout presets",
		Args:  cobra.NoArgs,
		RunE:  listLayouts,
	}

	rootCmd.AddCommand(fetchCmd, listCmd, showCmd, watchCmd, chartCmd, exportJSONCmd, exportCSVCmd, layoutsCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// the default logger may point off-screen after the interactive run
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("ptable failed", "err", err)
		os.Exit(1)
	}
}

// debugLogFile receives the interactive program's log with --debug.
const debugLogFile = "ptable-debug.log"

func debugging() bool {
	return debug || os.Getenv("PTABLE_DEBUG") != ""
}

func logLevel() slog.Level {
	if debugging() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func newLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)
	return logger
}
