package sampler

import (
	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

// Sampler generates a table of parameter sets from a validated spec.
// Generate assumes the spec already passed spec.Validate for its kind and
// only checks semantic feasibility. previous may be nil; samplers whose
// semantics are stateless ignore it.
type Sampler interface {
	Kind() string
	Columns() []string
	Generate(previous *table.Table) (*table.Table, error)
}

// New maps a spec's declared kind to its sampler. The kind set is closed:
// every recognized kind is enumerated here, and anything else fails with
// an UnknownKindError. Custom callbacks are resolved at Generate time
// through the explicit registry in custom.go.
func New(s *spec.Spec) (Sampler, error) {
	switch s.Type {
	case spec.KindList:
		return &listSampler{spec: s}, nil
	case spec.KindColumnList:
		return &columnListSampler{spec: s}, nil
	case spec.KindCrossProduct:
		return &crossProductSampler{spec: s}, nil
	case spec.KindRandom:
		return &randomSampler{spec: s}, nil
	case spec.KindCSV:
		return &csvSampler{spec: s}, nil
	case spec.KindCustom:
		return &customSampler{spec: s}, nil
	case spec.KindBestCandidate:
		return &bestCandidateSampler{spec: s}, nil
	default:
		return nil, &UnknownKindError{Kind: s.Type}
	}
}

// Kinds returns the closed kind set in a fixed order.
func Kinds() []string {
	return []string{
		spec.KindList,
		spec.KindColumnList,
		spec.KindCrossProduct,
		spec.KindRandom,
		spec.KindCSV,
		spec.KindCustom,
		spec.KindBestCandidate,
	}
}

// buildTable assembles the output table for samplers declaring columns as
// constants + parameters: constant columns first, their fixed value merged
// into every row, then the per-parameter cells of paramRows.
func buildTable(s *spec.Spec, paramRows [][]string) (*table.Table, error) {
	t, err := table.New(s.ColumnNames())
	if err != nil {
		return nil, &SpecificationError{Key: "parameters", Reason: err.Error()}
	}
	for _, pr := range paramRows {
		row := make([]string, 0, len(s.Constants)+len(pr))
		for _, c := range s.Constants {
			row = append(row, c.Value)
		}
		row = append(row, pr...)
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}
