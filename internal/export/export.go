package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

// Metadata describes one generation run alongside the exported csv.
type Metadata struct {
	Kind       string                        `json:"kind"`
	Seed       *int64                        `json:"seed,omitempty"`
	NumSamples int                           `json:"num_samples"`
	Columns    []string                      `json:"columns"`
	Parameters map[string]table.ParameterSet `json:"parameters"`
}

func NewMetadata(s *spec.Spec, t *table.Table) Metadata {
	return Metadata{
		Kind:       s.Type,
		Seed:       s.Seed,
		NumSamples: t.NumRows(),
		Columns:    t.Columns(),
		Parameters: t.ParameterBlock(),
	}
}

func WriteCSV(path string, t *table.Table) error {
	return t.WriteFile(path)
}

func WriteCSVStdout(t *table.Table) error {
	return t.WriteTo(os.Stdout)
}

func WriteJSON(path string, s *spec.Spec, t *table.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeJSON(file, s, t)
}

func WriteJSONStdout(s *spec.Spec, t *table.Table) error {
	return writeJSON(os.Stdout, s, t)
}

func writeJSON(w io.Writer, s *spec.Spec, t *table.Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewMetadata(s, t))
}
