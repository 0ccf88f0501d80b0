package table

import (
	"fmt"
	"strconv"
)

// Table is the column model shared by every sampler: an ordered set of
// unique column names and one row of cells per generated sample. Cells
// are stored in their csv interchange form. Once a sampler returns a
// table, it stops mutating it.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

func New(columns []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table requires at least one column")
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("column %d has an empty name", i)
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}
	return &Table{
		columns: append([]string(nil), columns...),
		index:   index,
	}, nil
}

func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) NumRows() int {
	return len(t.rows)
}

func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

func (t *Table) Cell(row int, column string) (string, bool) {
	i, ok := t.index[column]
	if !ok {
		return "", false
	}
	return t.rows[row][i], true
}

func (t *Table) AppendRow(row []string) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(t.columns))
	}
	t.rows = append(t.rows, append([]string(nil), row...))
	return nil
}

// AppendTable appends every row of other, matching cells by column name.
// Every column of t must be present in other.
func (t *Table) AppendTable(other *Table) error {
	for _, name := range t.columns {
		if !other.HasColumn(name) {
			return fmt.Errorf("missing column %q", name)
		}
	}
	for i := 0; i < other.NumRows(); i++ {
		row := make([]string, len(t.columns))
		for j, name := range t.columns {
			cell, _ := other.Cell(i, name)
			row[j] = cell
		}
		t.rows = append(t.rows, row)
	}
	return nil
}

func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	values := make([]string, len(t.rows))
	for r, row := range t.rows {
		values[r] = row[i]
	}
	return values, true
}

// Float64Column parses every cell of the named column.
func (t *Table) Float64Column(name string) ([]float64, error) {
	cells, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	values := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %q is not numeric", name, i, cell)
		}
		values[i] = v
	}
	return values, nil
}

// Records returns the csv form: header row followed by sample rows.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.rows)+1)
	records = append(records, t.Columns())
	for i := range t.rows {
		records = append(records, t.Row(i))
	}
	return records
}

// ParameterSet is one column of samples in the parameter-block form the
// downstream launch tooling consumes.
type ParameterSet struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// ParameterBlock converts the table to a per-column block keyed by
// column name, with a "NAME.%%" label per column.
func (t *Table) ParameterBlock() map[string]ParameterSet {
	block := make(map[string]ParameterSet, len(t.columns))
	for _, name := range t.columns {
		values, _ := t.Column(name)
		block[name] = ParameterSet{
			Label:  name + ".%%",
			Values: values,
		}
	}
	return block
}

// FormatFloat renders a float cell. The 'g'/-1 form round-trips
// exactly through ParseFloat, so seeded runs export identically.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
