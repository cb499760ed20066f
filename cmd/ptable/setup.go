package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/san-kum/ptable/internal/anim"
	"github.com/san-kum/ptable/internal/config"
	"github.com/san-kum/ptable/internal/elements"
	"github.com/san-kum/ptable/internal/storage"
	"github.com/spf13/cobra"
)

// resolveConfig loads the config file when given; flags the user set
// explicitly win over file values.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if datasetURL != "" {
		cfg.DatasetURL = datasetURL
	}
	if flags.Changed("layout") {
		cfg.Layout = layoutName
		cfg.Rows = nil
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDataset fetches once, or reads a local file or the cache. A failed
// fetch is not retried. Only `ptable fetch` writes snapshots.
func loadDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*elements.Dataset, error) {
	switch {
	case datasetFile != "":
		return elements.LoadFile(datasetFile)
	case offline:
		st := storage.New(cfg.DataDir)
		meta, err := st.Latest()
		if err != nil {
			if errors.Is(err, storage.ErrNoSnapshots) {
				return nil, fmt.Errorf("%w in %s (run `ptable fetch` first)", err, cfg.DataDir)
			}
			return nil, err
		}
		logger.Debug("using cached snapshot", "id", meta.ID, "fetched", meta.Timestamp)
		return st.LoadDataset(meta.ID)
	}

	return elements.NewFetcher(cfg.Timeout, logger).Fetch(ctx, cfg.DatasetURL)
}

func newController(ctx context.Context, cmd *cobra.Command) (*anim.Controller, *config.Config, error) {
	logger := newLogger()
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	ds, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	rows, err := cfg.GetRows()
	if err != nil {
		return nil, nil, err
	}
	opts, err := cfg.GetAnimOptions()
	if err != nil {
		return nil, nil, err
	}
	ctrl, err := anim.New(ds, rows, opts)
	if err != nil {
		return nil, nil, err
	}
	return ctrl, cfg, nil
}

func snapshotID(st *storage.Store, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	meta, err := st.Latest()
	if err != nil {
		return "", err
	}
	return meta.ID, nil
}
