package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/san-kum/ptable/internal/config"
	"github.com/san-kum/ptable/internal/storage"
)

const testPayload = `{"elements": [
	{"name": "Hydrogen", "symbol": "H", "atomic_mass": 1.008, "electronegativity_pauling": 2.2},
	{"name": "Helium", "symbol": "He", "atomic_mass": 4.0026022}
]}`

func TestLoadDatasetDoesNotCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testPayload)
	}))
	defer srv.Close()

	datasetFile, offline = "", false
	cfg := config.DefaultConfig()
	cfg.DatasetURL = srv.URL
	cfg.DataDir = filepath.Join(t.TempDir(), "data")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for i := 0; i < 3; i++ {
		ds, err := loadDataset(context.Background(), cfg, logger)
		if err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
		if ds.Len() != 2 {
			t.Fatalf("expected 2 elements, got %d", ds.Len())
		}
	}

	snaps, err := storage.New(cfg.DataDir).List()
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected no snapshots, got %d", len(snaps))
	}
}
