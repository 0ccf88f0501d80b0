package sampler

import (
	"fmt"
	"sync"

	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

// CustomFunc is a caller-supplied generation procedure. It must return a
// fully formed table; the system does not inspect its internals.
type CustomFunc func(s *spec.Spec, previous *table.Table) (*table.Table, error)

var (
	customMu    sync.RWMutex
	customFuncs = make(map[string]CustomFunc)
)

// RegisterCustom binds a name to a generation callback. The spec's
// "function" key selects a registered callback; there is no dynamic
// symbol resolution.
func RegisterCustom(name string, fn CustomFunc) {
	customMu.Lock()
	defer customMu.Unlock()
	customFuncs[name] = fn
}

func UnregisterCustom(name string) {
	customMu.Lock()
	defer customMu.Unlock()
	delete(customFuncs, name)
}

type customSampler struct {
	spec *spec.Spec
}

func (c *customSampler) Kind() string { return spec.KindCustom }

// Columns are whatever the callback produces.
func (c *customSampler) Columns() []string { return nil }

func (c *customSampler) Generate(previous *table.Table) (*table.Table, error) {
	customMu.RLock()
	fn, ok := customFuncs[c.spec.Function]
	customMu.RUnlock()
	if !ok {
		return nil, &SpecificationError{
			Key:    "function",
			Reason: fmt.Sprintf("no custom sampler registered under %q", c.spec.Function),
		}
	}

	t, err := fn(c.spec, previous)
	if err != nil {
		return nil, &GenerationError{Kind: c.Kind(), Reason: err.Error()}
	}
	if t == nil {
		return nil, &GenerationError{Kind: c.Kind(), Reason: fmt.Sprintf("callback %q returned no table", c.spec.Function)}
	}
	return t, nil
}
