package elements

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Element is one record of the dataset.
type Element struct {
	Symbol            string   `json:"symbol"`
	Name              string   `json:"name"`
	AtomicMass        float64  `json:"atomic_mass"`
	Electronegativity *float64 `json:"electronegativity_pauling"`
	Source            string   `json:"source"`
}

// HasElectronegativity reports whether the Pauling value is known.
func (e Element) HasElectronegativity() bool {
	return e.Electronegativity != nil
}

// RoundedMass returns the atomic mass rounded to three decimal places.
func (e Element) RoundedMass() float64 {
	return math.Round(e.AtomicMass*1000) / 1000
}

// MassLabel formats the rounded mass without trailing zeros.
func (e Element) MassLabel() string {
	return strconv.FormatFloat(e.RoundedMass(), 'f', -1, 64)
}

// ElectronegativityLabel formats the Pauling value, or a dash when unknown.
func (e Element) ElectronegativityLabel() string {
	if e.Electronegativity == nil {
		return "–"
	}
	return strconv.FormatFloat(*e.Electronegativity, 'f', -1, 64)
}

// Dataset is the ordered element list with a name index.
type Dataset struct {
	Elements []Element
	byName   map[string]int
}

// NewDataset indexes records by name. Records without a symbol, name or
// positive atomic mass are rejected, as are duplicate names.
func NewDataset(records []Element) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrMalformed)
	}
	ds := &Dataset{
		Elements: records,
		byName:   make(map[string]int, len(records)),
	}
	for i, rec := range records {
		if rec.Symbol == "" || rec.Name == "" {
			return nil, fmt.Errorf("%w: record %d missing symbol or name", ErrMalformed, i)
		}
		if rec.AtomicMass <= 0 {
			return nil, fmt.Errorf("%w: %s has no atomic mass", ErrMalformed, rec.Name)
		}
		if _, dup := ds.byName[rec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate element name %q", ErrMalformed, rec.Name)
		}
		ds.byName[rec.Name] = i
	}
	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Elements)
}

// At returns the record at index i.
func (d *Dataset) At(i int) (Element, bool) {
	if i < 0 || i >= len(d.Elements) {
		return Element{}, false
	}
	return d.Elements[i], true
}

// IndexOf returns the position of the named record.
func (d *Dataset) IndexOf(name string) (int, bool) {
	i, ok := d.byName[name]
	return i, ok
}

// ByName looks a record up by its unique name.
func (d *Dataset) ByName(name string) (Element, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Element{}, false
	}
	return d.Elements[i], true
}

type payload struct {
	Elements []Element `json:"elements"`
}

// Parse decodes a dataset document.
func Parse(r io.Reader) (*Dataset, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return NewDataset(p.Elements)
}

// LoadFile parses a dataset stored on disk.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
