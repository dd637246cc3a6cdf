package utils

import (
	"encoding/csv"
	"io"
)

// ParseCSV reads an entire CSV document. Ragged rows are allowed; the
// source files are hand-edited and short rows turn up in practice.
func ParseCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return records, nil
}
