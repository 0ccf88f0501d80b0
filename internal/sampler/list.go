package sampler

import (
	"fmt"

	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

// listSampler emits exactly the enumerated rows, in the order given.
// The declared value lists are the columns of the output; row i holds the
// i-th value of every list.
type listSampler struct {
	spec *spec.Spec
}

func (l *listSampler) Kind() string { return spec.KindList }

func (l *listSampler) Columns() []string { return l.spec.ColumnNames() }

func (l *listSampler) Generate(previous *table.Table) (*table.Table, error) {
	length := 1
	if len(l.spec.Parameters) > 0 {
		length = len(l.spec.Parameters[0].Values)
	}

	if l.spec.NumSamples > length {
		return nil, &GenerationError{
			Kind:   l.Kind(),
			Reason: fmt.Sprintf("%d samples requested but only %d values enumerated", l.spec.NumSamples, length),
		}
	}
	if l.spec.NumSamples > 0 {
		length = l.spec.NumSamples
	}

	rows := make([][]string, length)
	for i := range rows {
		row := make([]string, len(l.spec.Parameters))
		for j, p := range l.spec.Parameters {
			row[j] = p.Values[i]
		}
		rows[i] = row
	}
	return buildTable(l.spec, rows)
}
