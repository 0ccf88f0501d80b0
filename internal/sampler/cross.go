package sampler

import (
	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

// crossProductSampler emits the Cartesian product of the declared value
// lists. Row count is the product of the per-column cardinalities and the
// rightmost declared column varies fastest.
type crossProductSampler struct {
	spec *spec.Spec
}

func (c *crossProductSampler) Kind() string { return spec.KindCrossProduct }

func (c *crossProductSampler) Columns() []string { return c.spec.ColumnNames() }

func (c *crossProductSampler) Generate(previous *table.Table) (*table.Table, error) {
	var rows [][]string

	var expand func(depth int, current []string)
	expand = func(depth int, current []string) {
		if depth == len(c.spec.Parameters) {
			rows = append(rows, append([]string(nil), current...))
			return
		}
		for _, v := range c.spec.Parameters[depth].Values {
			expand(depth+1, append(current, v))
		}
	}
	expand(0, make([]string, 0, len(c.spec.Parameters)))

	return buildTable(c.spec, rows)
}
