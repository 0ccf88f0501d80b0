package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadFrom builds a table from csv content: header row then sample rows.
func ReadFrom(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return FromRecords(records)
}

func ReadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	t, err := ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	t, err := New(records[0])
	if err != nil {
		return nil, err
	}
	for i, row := range records[1:] {
		if err := t.AppendRow(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return t, nil
}

func (t *Table) WriteTo(w io.Writer) error {
	writer := csv.NewWriter(w)
	for _, record := range t.Records() {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (t *Table) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return t.WriteTo(file)
}
