package spec

import (
	"fmt"
	"strings"
)

// SchemaError reports a structural problem with a sampling spec. It is
// returned before any sampler runs.
type SchemaError struct {
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid sampler spec: %s: %s", e.Key, e.Reason)
}

// Validate runs the structural checks for the spec's declared kind.
// Semantic feasibility (range ordering, file existence, registered
// callbacks) is left to the samplers.
func (s *Spec) Validate() error {
	if s.Type == "" {
		return &SchemaError{Key: "type", Reason: "missing sampler type"}
	}

	switch s.Type {
	case KindList:
		return s.validateList()
	case KindColumnList:
		return s.validateColumnList()
	case KindCrossProduct:
		return s.validateCrossProduct()
	case KindRandom:
		return s.validateRandom()
	case KindCSV:
		return s.validateCSV()
	case KindCustom:
		return s.validateCustom()
	case KindBestCandidate:
		return s.validateBestCandidate()
	default:
		return &SchemaError{Key: "type", Reason: fmt.Sprintf("unrecognized sampler type %q", s.Type)}
	}
}

func (s *Spec) validateList() error {
	if err := s.checkColumns(); err != nil {
		return err
	}
	length := -1
	for _, p := range s.Parameters {
		if p.Values == nil {
			return &SchemaError{Key: "parameters." + p.Name, Reason: "must be a sequence of values"}
		}
		if length == -1 {
			length = len(p.Values)
		} else if len(p.Values) != length {
			return &SchemaError{
				Key:    "parameters." + p.Name,
				Reason: fmt.Sprintf("has %d values, expected %d (all lists must be equal length)", len(p.Values), length),
			}
		}
	}
	return nil
}

func (s *Spec) validateColumnList() error {
	if strings.TrimSpace(s.ColumnBlock) == "" {
		return &SchemaError{Key: "parameters", Reason: "missing tabular parameter block"}
	}
	width := -1
	for _, line := range strings.Split(s.ColumnBlock, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if width == -1 {
			width = len(fields)
		} else if len(fields) != width {
			return &SchemaError{
				Key:    "parameters",
				Reason: fmt.Sprintf("row %q has %d fields, expected %d", strings.TrimSpace(line), len(fields), width),
			}
		}
	}
	if width == -1 {
		return &SchemaError{Key: "parameters", Reason: "missing tabular parameter block"}
	}
	return nil
}

func (s *Spec) validateCrossProduct() error {
	if err := s.checkColumns(); err != nil {
		return err
	}
	for _, p := range s.Parameters {
		if len(p.Values) == 0 {
			return &SchemaError{Key: "parameters." + p.Name, Reason: "must be a non-empty sequence of values"}
		}
	}
	return nil
}

func (s *Spec) validateRandom() error {
	if s.NumSamples < 1 {
		return &SchemaError{Key: "num_samples", Reason: "must be at least 1"}
	}
	if err := s.checkColumns(); err != nil {
		return err
	}
	return s.checkRanges()
}

func (s *Spec) validateCSV() error {
	if s.CSVFile == "" {
		return &SchemaError{Key: "csv_file", Reason: "missing csv file path"}
	}
	return nil
}

func (s *Spec) validateCustom() error {
	if s.Function == "" {
		return &SchemaError{Key: "function", Reason: "missing function name"}
	}
	return nil
}

func (s *Spec) validateBestCandidate() error {
	if s.NumSamples < 1 {
		return &SchemaError{Key: "num_samples", Reason: "must be at least 1"}
	}
	if s.NumCandidates < 0 {
		return &SchemaError{Key: "num_candidates", Reason: "must not be negative"}
	}
	if len(s.Parameters) == 0 {
		return &SchemaError{Key: "parameters", Reason: "at least one parameter range is required"}
	}
	if err := s.checkColumns(); err != nil {
		return err
	}
	return s.checkRanges()
}

// checkColumns requires at least one declared column and no duplicate
// names across constants and parameters.
func (s *Spec) checkColumns() error {
	names := s.ColumnNames()
	if len(names) == 0 {
		return &SchemaError{Key: "parameters", Reason: "either constants or parameters must be declared"}
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return &SchemaError{Key: "parameters", Reason: "column names must not be empty"}
		}
		if seen[name] {
			return &SchemaError{Key: name, Reason: "declared more than once"}
		}
		seen[name] = true
	}
	return nil
}

func (s *Spec) checkRanges() error {
	for _, p := range s.Parameters {
		if !p.HasMin {
			return &SchemaError{Key: "parameters." + p.Name + ".min", Reason: "missing numeric minimum"}
		}
		if !p.HasMax {
			return &SchemaError{Key: "parameters." + p.Name + ".max", Reason: "missing numeric maximum"}
		}
	}
	return nil
}
