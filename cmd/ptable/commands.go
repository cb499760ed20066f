package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ptable/internal/config"
	"github.com/san-kum/ptable/internal/elements"
	"github.com/san-kum/ptable/internal/layout"
	"github.com/san-kum/ptable/internal/storage"
	"github.com/san-kum/ptable/internal/tui"
	"github.com/spf13/cobra"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	// the alt screen owns the terminal: log to a file with --debug, else nowhere
	path := ""
	if debugging() {
		path = debugLogFile
	}
	logger, closeLog, err := tui.NewLogger(path, logLevel())
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	rows, err := cfg.GetRows()
	if err != nil {
		return err
	}
	opts, err := cfg.GetAnimOptions()
	if err != nil {
		return err
	}

	load := func(ctx context.Context) (*elements.Dataset, error) {
		return loadDataset(ctx, cfg, logger)
	}
	return tui.Run(tui.Options{
		Rows:    rows,
		Anim:    opts,
		Period:  cfg.FadePeriod,
		Timeout: cfg.Timeout,
		Theme:   cfg.Theme,
	}, load, logger)
}

func fetchDataset(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()
	ds, err := elements.NewFetcher(cfg.Timeout, logger).Fetch(ctx, cfg.DatasetURL)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(ds, cfg.DatasetURL)
	if err != nil {
		return err
	}

	fmt.Printf("fetched %d elements\n", ds.Len())
	fmt.Printf("snapshot id: %s\n", id)
	return nil
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	snaps, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFETCHED\tELEMENTS\tURL")
	for _, s := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			s.ID,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Elements,
			s.URL,
		)
	}
	return w.Flush()
}

func showFrame(cmd *cobra.Command, args []string) error {
	ctrl, cfg, err := newController(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	if err := ctrl.SetTick(tick); err != nil {
		return err
	}
	if showSeries {
		ctrl.ToggleSeries()
	}

	fmt.Println(tui.RenderGrid(tui.Frame{
		Views:     ctrl.Views(),
		State:     ctrl.State(),
		CellWidth: cellWidth,
	}))

	if element == "" {
		return nil
	}
	i, ok := ctrl.Dataset().IndexOf(element)
	if !ok {
		return fmt.Errorf("unknown element: %s", element)
	}
	fmt.Println()
	fmt.Println(tui.RenderTooltip(ctrl.Dataset().Elements[i], i+1, tui.GetTheme(cfg.Theme)))
	return nil
}

func watchTable(cmd *cobra.Command, args []string) error {
	ctrl, cfg, err := newController(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	if showSeries {
		ctrl.ToggleSeries()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	r := tui.NewLiveRenderer(os.Stdout, cellWidth, !noClear)
	r.Start()
	defer r.Stop()

	err = ctrl.Run(ctx, cfg.FadePeriod, r)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func chartDataset(cmd *cobra.Command, args []string) error {
	ctrl, cfg, err := newController(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	ds := ctrl.Dataset()

	if cell < 0 {
		data := make([]float64, ds.Len())
		known := 0
		for i, el := range ds.Elements {
			data[i] = math.NaN()
			if el.Electronegativity != nil {
				data[i] = *el.Electronegativity
				known++
			}
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(12),
			asciigraph.Width(100),
			asciigraph.Caption(fmt.Sprintf("pauling electronegativity by atomic number (%d of %d known)", known, ds.Len())),
		))
		return nil
	}

	if cell >= ds.Len() {
		return fmt.Errorf("cell %d out of range (dataset has %d elements)", cell, ds.Len())
	}
	if ticks < 2 {
		return fmt.Errorf("ticks must be at least 2")
	}

	opts, err := cfg.GetAnimOptions()
	if err != nil {
		return err
	}
	r := make([]float64, ticks)
	g := make([]float64, ticks)
	b := make([]float64, ticks)
	for t := 0; t < ticks; t++ {
		c := opts.Weights.ColorFor(cell, t, opts.Range)
		r[t], g[t], b[t] = float64(c.R), float64(c.G), float64(c.B)
	}

	el := ds.Elements[cell]
	fmt.Println(asciigraph.PlotMany([][]float64{r, g, b},
		asciigraph.Height(15),
		asciigraph.Width(100),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("%s rgb over %d ticks in [%d,%d]", el.Name, ticks, opts.Range.Min, opts.Range.Max)),
	))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	id, err := snapshotID(st, args)
	if err != nil {
		return err
	}
	meta, err := st.Load(id)
	if err != nil {
		return err
	}
	ds, err := st.LoadDataset(id)
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta.URL, ds)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	id, err := snapshotID(st, args)
	if err != nil {
		return err
	}
	ds, err := st.LoadDataset(id)
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, ds)
}

func listLayouts(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tROWS\tELEMENTS\tCOLUMNS")
	for _, name := range config.ListPresets() {
		rows, _ := layout.Preset(name)
		g, err := layout.Expand(rows, layout.Demand(rows))
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d+%d\n", name, len(rows), layout.Demand(rows), g.Columns(), g.SeriesLength())
	}
	return w.Flush()
}
