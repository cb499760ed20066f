package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ptable/internal/elements"
)

// ErrNoSnapshots is returned by Latest on an empty store.
var ErrNoSnapshots = errors.New("storage: no cached snapshots")

var csvHeader = []string{"rank", "symbol", "name", "atomic_mass", "electronegativity_pauling", "source"}

// Store caches fetched datasets as one directory per snapshot.
type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SnapshotMetadata struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Timestamp time.Time `json:"timestamp"`
	Elements  int       `json:"elements"`
}

// Save writes metadata.json and elements.csv for ds.
func (s *Store) Save(ds *elements.Dataset, url string) (string, error) {
	ts := s.now()
	id := fmt.Sprintf("snapshot_%d", ts.UnixNano())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SnapshotMetadata{
		ID:        id,
		URL:       url,
		Timestamp: ts,
		Elements:  ds.Len(),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "elements.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, ds); err != nil {
		return "", err
	}
	return id, nil
}

// WriteCSV writes one row per element.
func WriteCSV(w io.Writer, ds *elements.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, el := range ds.Elements {
		en := ""
		if el.Electronegativity != nil {
			en = strconv.FormatFloat(*el.Electronegativity, 'f', -1, 64)
		}
		row := []string{
			strconv.Itoa(i + 1),
			el.Symbol,
			el.Name,
			strconv.FormatFloat(el.AtomicMass, 'f', -1, 64),
			en,
			el.Source,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns snapshots oldest first.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Timestamp.Before(snaps[j].Timestamp)
	})
	return snaps, nil
}

func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Latest returns the most recent snapshot.
func (s *Store) Latest() (*SnapshotMetadata, error) {
	snaps, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, ErrNoSnapshots
	}
	return &snaps[len(snaps)-1], nil
}

// LoadDataset rebuilds the dataset cached under id.
func (s *Store) LoadDataset(id string) (*elements.Dataset, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "elements.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", elements.ErrMalformed, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: snapshot %s is empty", elements.ErrMalformed, id)
	}

	recs := make([]elements.Element, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("%w: snapshot %s line %d has %d fields", elements.ErrMalformed, id, i+2, len(record))
		}
		mass, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: snapshot %s line %d: %v", elements.ErrMalformed, id, i+2, err)
		}
		el := elements.Element{
			Symbol:     record[1],
			Name:       record[2],
			AtomicMass: mass,
			Source:     record[5],
		}
		if record[4] != "" {
			en, err := strconv.ParseFloat(record[4], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: snapshot %s line %d: %v", elements.ErrMalformed, id, i+2, err)
			}
			el.Electronegativity = &en
		}
		recs = append(recs, el)
	}
	return elements.NewDataset(recs)
}
