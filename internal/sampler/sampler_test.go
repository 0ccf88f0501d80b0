package sampler

import (
	"errors"
	"testing"

	"github.com/san-kum/paramgen/internal/spec"
)

func mustParse(t *testing.T, yaml string) *spec.Spec {
	t.Helper()
	s, err := spec.Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	return s
}

func TestDispatchKnownKinds(t *testing.T) {
	for _, kind := range Kinds() {
		smp, err := New(&spec.Spec{Type: kind})
		if err != nil {
			t.Errorf("kind %s: dispatch failed: %v", kind, err)
			continue
		}
		if smp.Kind() != kind {
			t.Errorf("kind %s: sampler reports %s", kind, smp.Kind())
		}
	}
}

func TestDispatchUnknownKind(t *testing.T) {
	_, err := New(&spec.Spec{Type: "foo"})
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownKindError, got %v", err)
	}
	if unknown.Kind != "foo" {
		t.Errorf("expected kind foo, got %s", unknown.Kind)
	}
}

func TestListSampler(t *testing.T) {
	s := mustParse(t, `
type: list
parameters:
  a: [1, 2, 3]
  b: [4, 5, 6]
`)
	smp, err := New(s)
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	tbl, err := smp.Generate(nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if tbl.NumRows() != 3 {
		t.Fatalf("expected 3 rows, got %d", tbl.NumRows())
	}
	want := [][]string{{"1", "4"}, {"2", "5"}, {"3", "6"}}
	for i, w := range want {
		row := tbl.Row(i)
		if row[0] != w[0] || row[1] != w[1] {
			t.Errorf("row %d: expected %v, got %v", i, w, row)
		}
	}
}

func TestListSamplerTooManySamples(t *testing.T) {
	s := mustParse(t, `
type: list
num_samples: 5
parameters:
  a: [1, 2, 3]
`)
	smp, _ := New(s)
	_, err := smp.Generate(nil)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestCrossProductSampler(t *testing.T) {
	s := mustParse(t, `
type: cross_product
parameters:
  a: [1, 2]
  b: [x, y, z]
`)
	smp, _ := New(s)
	tbl, err := smp.Generate(nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if tbl.NumRows() != 6 {
		t.Fatalf("expected 6 rows, got %d", tbl.NumRows())
	}

	// rightmost column varies fastest
	first := tbl.Row(0)
	second := tbl.Row(1)
	if first[0] != "1" || first[1] != "x" {
		t.Errorf("unexpected first row: %v", first)
	}
	if second[0] != "1" || second[1] != "y" {
		t.Errorf("unexpected second row: %v", second)
	}

	seen := make(map[string]bool)
	for i := 0; i < tbl.NumRows(); i++ {
		row := tbl.Row(i)
		key := row[0] + "," + row[1]
		if seen[key] {
			t.Errorf("combination %s appears more than once", key)
		}
		seen[key] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct combinations, got %d", len(seen))
	}
}

func TestConstantsMergedIntoEveryRow(t *testing.T) {
	s := mustParse(t, `
type: cross_product
constants:
  X1: 20
parameters:
  X2: [5, 10]
`)
	smp, _ := New(s)
	tbl, err := smp.Generate(nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	cols := tbl.Columns()
	if cols[0] != "X1" || cols[1] != "X2" {
		t.Fatalf("expected constants first, got %v", cols)
	}
	for i := 0; i < tbl.NumRows(); i++ {
		if cell, _ := tbl.Cell(i, "X1"); cell != "20" {
			t.Errorf("row %d: expected X1=20, got %q", i, cell)
		}
	}
}

func TestColumnListSampler(t *testing.T) {
	s := mustParse(t, `
type: column_list
constants:
  X1: 20
parameters: |
  X2 X3
  5  10
  6  12
`)
	smp, _ := New(s)
	tbl, err := smp.Generate(nil)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	cols := tbl.Columns()
	if len(cols) != 3 || cols[0] != "X1" || cols[1] != "X2" || cols[2] != "X3" {
		t.Fatalf("unexpected columns: %v", cols)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.NumRows())
	}
	row := tbl.Row(1)
	if row[0] != "20" || row[1] != "6" || row[2] != "12" {
		t.Errorf("unexpected row: %v", row)
	}
}
