package sampler

import (
	"fmt"

	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

// csvSampler reads its samples verbatim from an external csv file.
// Column names come from the file header. With row_headers set, the file
// is transposed first: names run down the first column instead.
type csvSampler struct {
	spec *spec.Spec
}

func (c *csvSampler) Kind() string { return spec.KindCSV }

// Columns are unknown until the file is read.
func (c *csvSampler) Columns() []string { return nil }

func (c *csvSampler) Generate(previous *table.Table) (*table.Table, error) {
	var src *table.Table
	var err error
	if c.spec.RowHeaders {
		src, err = c.readTransposed()
	} else {
		src, err = table.ReadFile(c.spec.CSVFile)
	}
	if err != nil {
		return nil, &SpecificationError{Key: "csv_file", Reason: err.Error()}
	}

	names := make([]string, 0, len(c.spec.Constants)+len(src.Columns()))
	for _, con := range c.spec.Constants {
		names = append(names, con.Name)
	}
	names = append(names, src.Columns()...)

	t, err := table.New(names)
	if err != nil {
		return nil, &SpecificationError{Key: "csv_file", Reason: err.Error()}
	}
	for i := 0; i < src.NumRows(); i++ {
		row := make([]string, 0, len(names))
		for _, con := range c.spec.Constants {
			row = append(row, con.Value)
		}
		row = append(row, src.Row(i)...)
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}

	if previous != nil {
		out, err := table.New(t.Columns())
		if err != nil {
			return nil, err
		}
		if err := out.AppendTable(previous); err != nil {
			return nil, &SpecificationError{Key: "previous_samples", Reason: err.Error()}
		}
		if err := out.AppendTable(t); err != nil {
			return nil, err
		}
		return out, nil
	}
	return t, nil
}

func (c *csvSampler) readTransposed() (*table.Table, error) {
	src, err := table.ReadFile(c.spec.CSVFile)
	if err != nil {
		return nil, err
	}
	records := src.Records()
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, fmt.Errorf("%s: empty table", c.spec.CSVFile)
	}
	transposed := make([][]string, len(records[0]))
	for i := range transposed {
		transposed[i] = make([]string, len(records))
		for j := range records {
			transposed[i][j] = records[j][i]
		}
	}
	return table.FromRecords(transposed)
}
