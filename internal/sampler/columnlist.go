package sampler

import (
	"strings"

	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

// columnListSampler reads its samples from a whitespace-separated tabular
// block: the first non-empty line names the columns, each following line
// is one sample.
type columnListSampler struct {
	spec *spec.Spec
}

func (c *columnListSampler) Kind() string { return spec.KindColumnList }

func (c *columnListSampler) Columns() []string {
	header, _ := c.parse()
	names := make([]string, 0, len(c.spec.Constants)+len(header))
	for _, con := range c.spec.Constants {
		names = append(names, con.Name)
	}
	return append(names, header...)
}

func (c *columnListSampler) parse() (header []string, rows [][]string) {
	for _, line := range strings.Split(c.spec.ColumnBlock, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if header == nil {
			header = fields
			continue
		}
		rows = append(rows, fields)
	}
	return header, rows
}

func (c *columnListSampler) Generate(previous *table.Table) (*table.Table, error) {
	header, rows := c.parse()

	names := make([]string, 0, len(c.spec.Constants)+len(header))
	for _, con := range c.spec.Constants {
		names = append(names, con.Name)
	}
	names = append(names, header...)

	t, err := table.New(names)
	if err != nil {
		return nil, &SpecificationError{Key: "parameters", Reason: err.Error()}
	}
	for _, r := range rows {
		row := make([]string, 0, len(names))
		for _, con := range c.spec.Constants {
			row = append(row, con.Value)
		}
		row = append(row, r...)
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}
