package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/ptable/internal/elements"
)

type ExportData struct {
	Source   string             `json:"source,omitempty"`
	Count    int                `json:"count"`
	Elements []elements.Element `json:"elements"`
}

// ExportJSON writes the consumed fields of ds in the dataset's own shape.
func ExportJSON(w io.Writer, source string, ds *elements.Dataset) error {
	data := ExportData{
		Source:   source,
		Count:    ds.Len(),
		Elements: ds.Elements,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
