package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New([]string{"X1", "X2"})
	if err != nil {
		t.Fatalf("new table failed: %v", err)
	}
	tbl.AppendRow([]string{"20", "5"})
	tbl.AppendRow([]string{"20", "10"})
	return tbl
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	if err := WriteCSV(path, sampleTable(t)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := table.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if loaded.NumRows() != 2 {
		t.Errorf("expected 2 rows, got %d", loaded.NumRows())
	}
}

func TestWriteJSON(t *testing.T) {
	seed := int64(42)
	s := &spec.Spec{Type: spec.KindBestCandidate, Seed: &seed}

	path := filepath.Join(t.TempDir(), "metadata.json")
	if err := WriteJSON(path, s, sampleTable(t)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if meta.Kind != spec.KindBestCandidate {
		t.Errorf("expected kind best_candidate, got %s", meta.Kind)
	}
	if meta.Seed == nil || *meta.Seed != 42 {
		t.Errorf("expected seed 42, got %v", meta.Seed)
	}
	if meta.NumSamples != 2 {
		t.Errorf("expected 2 samples, got %d", meta.NumSamples)
	}
	if block, ok := meta.Parameters["X2"]; !ok || block.Label != "X2.%%" {
		t.Errorf("unexpected parameter block: %+v", meta.Parameters)
	}
}
