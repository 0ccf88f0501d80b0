package sampler

import "fmt"

// SpecificationError reports a semantically invalid value inside a spec
// that already passed structural validation.
type SpecificationError struct {
	Key    string
	Reason string
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("invalid specification: %s: %s", e.Key, e.Reason)
}

// GenerationError reports that a sampler could not satisfy the requested
// sample count. Generation is all-or-nothing; no partial table is returned.
type GenerationError struct {
	Kind   string
	Reason string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s sampler: generation failed: %s", e.Kind, e.Reason)
}

// UnknownKindError reports a sampler kind outside the closed kind set.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown sampler kind %q", e.Kind)
}
